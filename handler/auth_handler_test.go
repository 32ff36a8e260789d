package handler

import (
	"net/http"
	"strings"
	"testing"

	"main/utils"
)

const signupBody = `{"email":"A@X.com","username":"Bob","password":"abcde","fullname":"Bobby B"}`

func TestSignupHandler(t *testing.T) {
	app := newTestApp()

	w := app.do(http.MethodPost, "/api/auth/signup", signupBody, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}

	resp := decodeResponse(w)
	data, _ := resp["data"].(map[string]interface{})
	user, _ := data["user"].(map[string]interface{})
	if user["email"] != "a@x.com" {
		t.Errorf("got email %v, want a@x.com", user["email"])
	}
	if user["username"] != "bob" {
		t.Errorf("got username %v, want bob", user["username"])
	}
	if _, exposed := user["password"]; exposed {
		t.Error("password hash exposed in response")
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("no token in response")
	}

	// The session cookie carries the same token.
	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, utils.SessionCookieName+"=") {
		t.Errorf("no session cookie set: %q", setCookie)
	}
	if !strings.Contains(setCookie, "HttpOnly") || !strings.Contains(setCookie, "Secure") {
		t.Errorf("cookie missing HttpOnly/Secure flags: %q", setCookie)
	}

	claims, err := app.tokens.Verify(token)
	if err != nil {
		t.Fatalf("signup token does not verify: %v", err)
	}
	if claims.Username != "bob" {
		t.Errorf("token claims username %v, want bob", claims.Username)
	}
}

func TestSignupHandlerValidation(t *testing.T) {
	app := newTestApp()

	w := app.do(http.MethodPost, "/api/auth/signup",
		`{"email":"nope","username":"Bob","password":"abcde","fullname":"Bobby B"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	resp := decodeResponse(w)
	if resp["code"] != utils.CodeValidationError {
		t.Errorf("got code %v, want %s", resp["code"], utils.CodeValidationError)
	}
	if resp["field"] != "email" {
		t.Errorf("got field %v, want email", resp["field"])
	}
}

func TestSignupHandlerConflict(t *testing.T) {
	app := newTestApp()

	if w := app.do(http.MethodPost, "/api/auth/signup", signupBody, ""); w.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", w.Code)
	}

	w := app.do(http.MethodPost, "/api/auth/signup",
		`{"email":"other@x.com","username":"BOB","password":"abcde","fullname":"Bobby B"}`, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("got status %d, want 409: %s", w.Code, w.Body.String())
	}
	if resp := decodeResponse(w); resp["code"] != utils.CodeConflict {
		t.Errorf("got code %v, want %s", resp["code"], utils.CodeConflict)
	}
}

func TestSigninHandler(t *testing.T) {
	app := newTestApp()
	if w := app.do(http.MethodPost, "/api/auth/signup", signupBody, ""); w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", w.Code)
	}

	w := app.do(http.MethodPost, "/api/auth/signin",
		`{"usernameOrEmail":"BOB","password":"abcde"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), utils.SessionCookieName+"=") {
		t.Error("signin did not set the session cookie")
	}

	resp := decodeResponse(w)
	data, _ := resp["data"].(map[string]interface{})
	if token, _ := data["token"].(string); token == "" {
		t.Error("no token in signin response")
	}
}

func TestSigninHandlerGenericFailure(t *testing.T) {
	app := newTestApp()
	if w := app.do(http.MethodPost, "/api/auth/signup", signupBody, ""); w.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d", w.Code)
	}

	unknown := app.do(http.MethodPost, "/api/auth/signin",
		`{"usernameOrEmail":"nobody","password":"abcde"}`, "")
	wrongPass := app.do(http.MethodPost, "/api/auth/signin",
		`{"usernameOrEmail":"bob","password":"wrong"}`, "")

	cases := []struct {
		name string
		code int
		body string
	}{
		{"unknown user", unknown.Code, unknown.Body.String()},
		{"wrong password", wrongPass.Code, wrongPass.Body.String()},
	}
	for _, tc := range cases {
		if tc.code != http.StatusUnauthorized {
			t.Errorf("%s: got status %d, want 401", tc.name, tc.code)
		}
		if !strings.Contains(tc.body, utils.CodeInvalidCredential) {
			t.Errorf("%s: expected %s code, got %s", tc.name, utils.CodeInvalidCredential, tc.body)
		}
	}

	// Identical bodies: responses cannot be used to enumerate users.
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Error("signin failure responses differ between unknown user and wrong password")
	}
}

func TestSignoutHandler(t *testing.T) {
	app := newTestApp()

	// Idempotent: works with or without an active session.
	for i := 0; i < 2; i++ {
		w := app.do(http.MethodPost, "/api/auth/signout", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("signout %d: got status %d, want 200", i, w.Code)
		}
		setCookie := w.Header().Get("Set-Cookie")
		if !strings.Contains(setCookie, utils.SessionCookieName+"=;") || !strings.Contains(setCookie, "Max-Age=0") {
			t.Errorf("signout %d: cookie not cleared: %q", i, setCookie)
		}
	}
}
