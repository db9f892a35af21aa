package schema

import "testing"

func TestSQLType(t *testing.T) {
	tests := []struct {
		domain DomainType
		want   string
	}{
		{DomainText, "TEXT"},
		{DomainInteger, "INTEGER"},
		{DomainFloat, "REAL"},
		{DomainBool, "INTEGER"},
		{DomainBlob, "BLOB"},
		{DomainTimestamp, "TEXT"},
		{DomainUUID, "TEXT"},
	}

	for _, tt := range tests {
		t.Run(string(tt.domain), func(t *testing.T) {
			if got := tt.domain.SQLType(); got != tt.want {
				t.Errorf("SQLType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumeric(t *testing.T) {
	numeric := []DomainType{DomainInteger, DomainFloat, DomainBool}
	for _, d := range numeric {
		if !d.Numeric() {
			t.Errorf("%s should be numeric", d)
		}
	}

	textual := []DomainType{DomainText, DomainUUID, DomainTimestamp, DomainBlob}
	for _, d := range textual {
		if d.Numeric() {
			t.Errorf("%s should not be numeric", d)
		}
	}
}
