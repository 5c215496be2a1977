package valueobjects

import "fmt"

type TicketType string

const (
	TypeRepair     TicketType = "repair"
	TypePreventive TicketType = "preventive_maintenance"
)

var validTicketTypes = map[TicketType]bool{
	TypeRepair:     true,
	TypePreventive: true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

func (t TicketType) IsRepair() bool {
	return t == TypeRepair
}

func (t TicketType) IsPreventive() bool {
	return t == TypePreventive
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
