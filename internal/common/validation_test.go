package common

import "testing"

func TestValidateScaffoldName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid name", input: "invite-co-investors", wantErr: false},
		{name: "valid with underscore", input: "deal_list", wantErr: false},
		{name: "valid with digits", input: "spv2", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "forward slash", input: "investor/invite", wantErr: true},
		{name: "backslash", input: "investor\\invite", wantErr: true},
		{name: "dot", input: ".", wantErr: true},
		{name: "dot dot", input: "..", wantErr: true},
		{name: "uppercase", input: "InviteCoInvestors", wantErr: true},
		{name: "space", input: "invite co investors", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScaffoldName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScaffoldName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDestination(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid nested path", input: "src/__tests__/investor/invite-co-investors.test.tsx", wantErr: false},
		{name: "valid flat path", input: "out.txt", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "absolute", input: "/tmp/out.txt", wantErr: true},
		{name: "parent escape", input: "../out.txt", wantErr: true},
		{name: "nested parent escape", input: "src/../../out.txt", wantErr: true},
		{name: "dot dot segment that stays inside", input: "src/../out.txt", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDestination(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDestination(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("value"); err != nil {
		t.Errorf("Expected no error for non-empty value, got %v", err)
	}
	if err := ValidateNotEmpty("  "); err == nil {
		t.Error("Expected error for whitespace-only value")
	}
}
