// bool.go - air-bool parsing.
// SPDX-License-Identifier: GPL-3.0-or-later

package valueset

import "strings"

// ParseBool recognizes the air-bool enumeration strings, case
// insensitively: "true"/"yes"/"on"/"1" map to true, "false"/"no"/
// "off"/"0" map to false.
func ParseBool(name, token string) (bool, error) {
	switch strings.ToLower(token) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, ErrBoolParse{Name: name, Token: token}
	}
}
