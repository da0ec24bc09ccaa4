package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if err := CheckPassword("correct horse battery staple", hash); err != nil {
		t.Errorf("CheckPassword rejected the right password: %v", err)
	}
	if err := CheckPassword("wrong password", hash); err == nil {
		t.Error("CheckPassword accepted the wrong password")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("accepted a 5-character password")
	}
	if err := ValidatePassword("exactly8"); err != nil {
		t.Errorf("rejected an 8-character password: %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("token-test-secret")

	token, err := IssueToken(secret, 3, "user@example.com", "admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 3 || claims.Email != "user@example.com" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret-a"), 1, "a@b.com", "editor")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := ParseToken([]byte("secret-b"), token); err == nil {
		t.Error("ParseToken accepted a token signed with another secret")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken([]byte("secret"), "garbage.token.here"); err == nil {
		t.Error("ParseToken accepted garbage")
	}
}
