package password

import "testing"

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "password123",
			wantErr:  false,
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
			wantErr:  false,
		},
		{
			name:     "short password",
			password: "abc",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := Hash(tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("Hash() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && gotHash == "" {
				t.Error("Hash() returned empty hash")
			}

			if !tt.wantErr {
				if err = Compare(gotHash, tt.password); err != nil {
					t.Errorf("generated hash doesn't match original password: %v", err)
				}
			}
		})
	}
}

func TestCompare(t *testing.T) {
	correctHash, err := Hash("correct_password")
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		hash        string
		password    string
		shouldMatch bool
	}{
		{
			name:        "matching password",
			hash:        correctHash,
			password:    "correct_password",
			shouldMatch: true,
		},
		{
			name:        "wrong password",
			hash:        correctHash,
			password:    "wrong_password",
			shouldMatch: false,
		},
		{
			name:        "empty password",
			hash:        correctHash,
			password:    "",
			shouldMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(tt.hash, tt.password)

			if tt.shouldMatch && err != nil {
				t.Errorf("Compare() should succeed, got error: %v", err)
			}
			if !tt.shouldMatch && err == nil {
				t.Error("Compare() should fail, but got no error")
			}
		})
	}
}
