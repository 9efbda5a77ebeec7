package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"???", ""},
		{"   --  ", ""},
		{"Reactor Vessel Catalyst Changeout", "reactor-vessel-catalyst-changeout"},
		{"Pipeline Welding — East Yard", "pipeline-welding-east-yard"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Crème Brûlée", "creme-brulee"},
		{"Straße & Æther", "strasse-aether"},
		{"Ünïcödé 2024!", "unicode-2024"},
		{"API/REST___Integration", "api-rest-integration"},
		{"Σήμα", "σημα"},
		{"日本語 サイト", "日本語-サイト"},
		{"reactor-vessel-catalyst-changeout", "reactor-vessel-catalyst-changeout"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.input))
		})
	}
}

func TestDeriveIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"???",
		"Pipeline Welding — East Yard",
		"ÅNGSTRÖM ﬁeld İstanbul",
		"Straße-Øresund Łódź",
		"a--b__c  d",
		"Ǆemal",
		"١٢٣ Arabic digits",
		strings.Repeat("Long Title ", 40),
	}

	for _, in := range inputs {
		once := Derive(in)
		assert.Equal(t, once, Derive(once), "input %q", in)
	}
}

func TestDeriveNonEmptyForAlphanumericInput(t *testing.T) {
	for _, in := range []string{"a", "7", "—x—", "!!!Z!!!", "é"} {
		assert.NotEmpty(t, Derive(in), "input %q", in)
	}
}

func TestDeriveTruncates(t *testing.T) {
	got := Derive(strings.Repeat("word ", 100))

	assert.LessOrEqual(t, len([]rune(got)), MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("east-yard"))
	assert.True(t, Valid("unit-7"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("East-Yard"))
	assert.False(t, Valid("east--yard"))
	assert.False(t, Valid("-east"))
	assert.False(t, Valid("east yard"))
}
