package domain

import (
	"strings"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type LeaveRequestedMailData struct {
	Member   string `json:"member"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

type LeaveApprovedMailData struct {
	Member   string `json:"member"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// MemberAddress derives a mailbox for a roster member from the display name,
// e.g. "Asha Rao" + "example.com" -> "asha.rao@example.com".
func MemberAddress(member, userDomain string) string {
	local := strings.ToLower(strings.TrimSpace(member))
	local = strings.Join(strings.Fields(local), ".")
	return local + "@" + userDomain
}
