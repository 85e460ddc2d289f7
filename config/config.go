// Package config loads the finance-sheets configuration from a dotenv style key/value file.
package config

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	DefaultFile     = "secrets.env"
	DefaultRange    = "Sheet1"
	DefaultCurrency = "INR"
)

// Required lists the keys that must be present in the configuration file.
var Required = []string{"SCOPES", "ID", "TOKEN_PATH", "CREDENTIALS_PATH", "SALARY"}

// Config is the explicitly constructed configuration passed to each component.
type Config struct {
	Scopes      []string        // SCOPES: OAuth2 scopes, comma or space separated
	ID          string          // ID: spreadsheet ID (or the full spreadsheet URL)
	TokenPath   string          // TOKEN_PATH: cached OAuth2 token file
	Credentials string          // CREDENTIALS_PATH: OAuth2 client secrets file
	Salary      decimal.Decimal // SALARY: default salary amount
	Range       string          // RANGE: worksheet range, defaults to Sheet1
	Currency    string          // CURRENCY: ISO 4217 code used for display, defaults to INR
}

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s (%w)", path, err)
	}

	return Parse(env)
}

// Parse validates a set of configuration key/value pairs. All missing required keys are
// reported in a single error.
func Parse(env map[string]string) (*Config, error) {
	missing := []string{}
	for _, k := range Required {
		if strings.TrimSpace(env[k]) == "" {
			missing = append(missing, k)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration %s", strings.Join(missing, ", "))
	}

	scopes := strings.FieldsFunc(env["SCOPES"], func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if len(scopes) == 0 {
		return nil, fmt.Errorf("invalid SCOPES '%s'", env["SCOPES"])
	}

	id := strings.TrimSpace(env["ID"])
	if match := spreadsheetURL.FindStringSubmatch(id); len(match) > 1 {
		id = match[1]
	}

	if id == "" {
		return nil, fmt.Errorf("invalid spreadsheet ID '%s'", env["ID"])
	}

	salary, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(env["SALARY"]), ",", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid SALARY '%s' (%w)", env["SALARY"], err)
	}

	conf := Config{
		Scopes:      scopes,
		ID:          id,
		TokenPath:   strings.TrimSpace(env["TOKEN_PATH"]),
		Credentials: strings.TrimSpace(env["CREDENTIALS_PATH"]),
		Salary:      salary,
		Range:       DefaultRange,
		Currency:    DefaultCurrency,
	}

	if v := strings.TrimSpace(env["RANGE"]); v != "" {
		conf.Range = v
	}

	if v := strings.TrimSpace(env["CURRENCY"]); v != "" {
		conf.Currency = strings.ToUpper(v)
	}

	return &conf, nil
}
