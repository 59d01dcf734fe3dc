// Package keymap models the immutable mapping from physical button codes to
// show bindings and the reserved mode-switch button.
package keymap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/tvjuke-cli/tvjuke/key"
)

// ShowBinding names the shows a button selects: Short plays on a quick
// press, Long on a held press. Long always holds a value; it defaults to
// Short when the binding declares no distinct long show.
type ShowBinding struct {
	Short string
	Long  string
}

// Map is the validated button table. Exactly one code is the mode-switch
// button; every other bound code carries a ShowBinding.
type Map struct {
	switchCode uint16
	shows      map[uint16]ShowBinding
}

// Load parses and validates the button table from global configuration.
// Bindings are strings of the form "code=show" or "code=short|long".
func Load() (Map, error) {
	switchCode := viper.GetInt(key.KeymapSwitchKey)
	if switchCode < 0 || switchCode > 0xFFFF {
		return Map{}, fmt.Errorf("keymap: switch key code %d out of range", switchCode)
	}

	m := Map{
		switchCode: uint16(switchCode),
		shows:      make(map[uint16]ShowBinding),
	}

	for _, raw := range viper.GetStringSlice(key.KeymapBindings) {
		code, binding, err := parseBinding(raw)
		if err != nil {
			return Map{}, err
		}
		if code == m.switchCode {
			return Map{}, fmt.Errorf("keymap: code %d is the switch key and cannot bind a show", code)
		}
		if _, dup := m.shows[code]; dup {
			return Map{}, fmt.Errorf("keymap: duplicate binding for code %d", code)
		}
		m.shows[code] = binding
	}

	if len(m.shows) == 0 {
		return Map{}, fmt.Errorf("keymap: no show bindings configured")
	}
	return m, nil
}

func parseBinding(raw string) (uint16, ShowBinding, error) {
	codeStr, shows, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, ShowBinding{}, fmt.Errorf("keymap: malformed binding %q, want code=show", raw)
	}

	code, err := strconv.ParseUint(strings.TrimSpace(codeStr), 10, 16)
	if err != nil {
		return 0, ShowBinding{}, fmt.Errorf("keymap: invalid key code in %q: %w", raw, err)
	}

	short, long, hasLong := strings.Cut(shows, "|")
	short = strings.TrimSpace(short)
	long = strings.TrimSpace(long)

	if short == "" {
		return 0, ShowBinding{}, fmt.Errorf("keymap: empty show name in %q", raw)
	}
	if !hasLong || long == "" {
		long = short
	}
	return uint16(code), ShowBinding{Short: short, Long: long}, nil
}

// SwitchCode returns the code of the mode-switch button.
func (m Map) SwitchCode() uint16 {
	return m.switchCode
}

// IsSwitch reports whether the code is the mode-switch button.
func (m Map) IsSwitch(code uint16) bool {
	return code == m.switchCode
}

// Show returns the binding for a show button.
func (m Map) Show(code uint16) (ShowBinding, bool) {
	b, ok := m.shows[code]
	return b, ok
}

// Mapped reports whether the code is known at all, switch button included.
func (m Map) Mapped(code uint16) bool {
	if m.IsSwitch(code) {
		return true
	}
	_, ok := m.shows[code]
	return ok
}
