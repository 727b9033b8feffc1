package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/internal/cli"
	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
)

func run(t *testing.T, cfg cli.Config, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), cfg, strings.NewReader(input), &out, nil))
	return out.String()
}

func TestRun_Prompt(t *testing.T) {
	tests := []struct {
		name     string
		cfg      cli.Config
		input    string
		expected string
	}{
		{
			name:     "valid visa",
			input:    "4532015112830366\n",
			expected: "Enter the card number: Brand: Visa\nValid by Luhn? Yes\n",
		},
		{
			name:     "formatted number with crlf",
			input:    "5105 1051 0510 5100\r\n",
			expected: "Enter the card number: Brand: MasterCard\nValid by Luhn? Yes\n",
		},
		{
			name:     "classified but invalid",
			input:    "5100000000000000\n",
			expected: "Enter the card number: Brand: MasterCard\nValid by Luhn? No\n",
		},
		{
			name:     "malformed",
			input:    "1234-56ab\n",
			expected: "Enter the card number: Brand not identified.\nValid by Luhn? No\n",
		},
		{
			name:     "no input",
			input:    "",
			expected: "Enter the card number: Brand not identified.\nValid by Luhn? No\n",
		},
		{
			name:     "only first line is read",
			input:    "5019717010103742\n4532015112830366\n",
			expected: "Enter the card number: Brand: Aura\nValid by Luhn? Yes\n",
		},
		{
			name:     "portuguese",
			cfg:      cli.Config{Lang: "pt"},
			input:    "4532015112830366",
			expected: "Digite o número do cartão: Bandeira: Visa\nCartão válido pelo Luhn? Sim\n",
		},
		{
			name:     "portuguese from locale",
			cfg:      cli.Config{Locale: "pt_BR.UTF-8"},
			input:    "0000\n",
			expected: "Digite o número do cartão: Bandeira não identificada.\nCartão válido pelo Luhn? Sim\n",
		},
		{
			name:     "explicit language wins over locale",
			cfg:      cli.Config{Lang: "en", Locale: "pt_BR.UTF-8"},
			input:    "0000\n",
			expected: "Enter the card number: Brand not identified.\nValid by Luhn? Yes\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, tt.cfg, tt.input))
		})
	}
}

func TestRun_Arguments(t *testing.T) {
	out := run(t, cli.Config{Numbers: []string{"4532-0151-1283-0366", "378282246310005", "42"}}, "ignored\n")
	assert.Equal(t, strings.Join([]string{
		"Card: **** **** **** 0366",
		"Brand: Visa",
		"Valid by Luhn? Yes",
		"Card: **** **** ***0 005",
		"Brand: American Express",
		"Valid by Luhn? Yes",
		"Card: **",
		"Brand: Visa",
		"Valid by Luhn? Yes",
	}, "\n")+"\n", out)
	assert.NotContains(t, out, "Enter the card number")
}

func TestRun_ArgumentsMalformed(t *testing.T) {
	out := run(t, cli.Config{Numbers: []string{"1234-56ab", "4532 0151 1283 03x6"}}, "")
	assert.Equal(t, strings.Join([]string{
		"Card: 1*******b",
		"Brand not identified.",
		"Valid by Luhn? No",
		"Card: 4*****************6",
		"Brand not identified.",
		"Valid by Luhn? No",
	}, "\n")+"\n", out)
	assert.NotContains(t, out, "56ab")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := cli.Run(ctx, cli.Config{Numbers: []string{"4"}}, strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CustomTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- brand: Store Card\n  prefixes: [\"99\"]\n- brand: Visa\n  prefixes: [\"4\"]\n"), 0o600))

	out := run(t, cli.Config{Table: path}, "9999999999999995\n")
	assert.Equal(t, "Enter the card number: Brand: Store Card\nValid by Luhn? Yes\n", out)

	out = run(t, cli.Config{Table: path}, "5100000000000000\n")
	assert.Contains(t, out, "Brand not identified.")
}

func TestRun_TableErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- brand: Visa\n  prefixes: [\"5-55\"]\n"), 0o600))

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad} {
		err := cli.Run(context.Background(), cli.Config{Table: path}, strings.NewReader(""), &bytes.Buffer{}, nil)
		assert.ErrorIs(t, err, cli.ErrLoadTable, path)
	}

	err := cli.Run(context.Background(), cli.Config{Table: bad}, strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, card.ErrInvalidRule)
}

func TestRun_DumpTable(t *testing.T) {
	out := run(t, cli.Config{DumpTable: true}, "")

	table, err := card.DecodeTable(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, card.DefaultTable(), table)
}

func TestRun_LogsMaskedNumber(t *testing.T) {
	var logs, out bytes.Buffer
	log := logger.New(logger.WithOutput(&logs), logger.WithLevelName("debug"))

	err := cli.Run(context.Background(), cli.Config{}, strings.NewReader("4532015112830366\n"), &out, log)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"card":"************0366"`)
	assert.Contains(t, logs.String(), `"brand":"Visa"`)
	assert.Contains(t, logs.String(), `"prefix":"4"`)
	assert.NotContains(t, logs.String(), "4532015112830366")
}

func TestLoadClassifier(t *testing.T) {
	c, err := cli.LoadClassifier("")
	require.NoError(t, err)
	assert.Same(t, card.Default(), c)
}
