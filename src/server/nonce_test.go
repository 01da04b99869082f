package server

import "testing"

func TestNonceSingleUse(t *testing.T) {
	ns := NewNonceStore()

	token := ns.Issue(addLicenseAction)
	if token == "" {
		t.Fatal("Issue returned an empty token")
	}

	if !ns.Verify(token, addLicenseAction) {
		t.Error("freshly issued token did not verify")
	}
	if ns.Verify(token, addLicenseAction) {
		t.Error("token verified twice")
	}
}

func TestNonceBoundToAction(t *testing.T) {
	ns := NewNonceStore()

	token := ns.Issue(addLicenseAction)
	if ns.Verify(token, importCSVAction) {
		t.Error("token verified against the wrong action")
	}
	// The attempt consumed it either way.
	if ns.Verify(token, addLicenseAction) {
		t.Error("token survived a failed verification")
	}
}

func TestNonceUnknownToken(t *testing.T) {
	ns := NewNonceStore()

	if ns.Verify("not-a-token", addLicenseAction) {
		t.Error("unknown token verified")
	}

	tokens := map[string]bool{}
	for i := 0; i < 10; i++ {
		tok := ns.Issue(addLicenseAction)
		if tokens[tok] {
			t.Fatal("duplicate token issued")
		}
		tokens[tok] = true
	}
}
