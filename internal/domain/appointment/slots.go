package appointment

import (
	"fmt"
	"strconv"

	"github.com/ultramind-solutions/agendepro/internal/httperr"
)

// GenerateSlots produz a grade de horários HH:MM de um expediente:
// começa em start, avança de interval em interval minutos e para
// estritamente antes de end. start >= end resulta em grade vazia.
func GenerateSlots(start, end string, interval int) ([]string, error) {
	if interval <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidConfiguration)
	}

	startMin, err := ParseHM(start)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidConfiguration)
	}
	endMin, err := ParseHM(end)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidConfiguration)
	}

	slots := []string{}
	for m := startMin; m < endMin; m += interval {
		slots = append(slots, FormatHM(m))
	}

	return slots, nil
}

// ParseHM converte "HH:MM" (24h, com zero à esquerda) em minutos do dia.
func ParseHM(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	h, err := strconv.Atoi(hm[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	m, err := strconv.Atoi(hm[3:])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	return h*60 + m, nil
}

// FormatHM formata minutos do dia como "HH:MM".
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
