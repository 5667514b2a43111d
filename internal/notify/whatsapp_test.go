package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmationRequest() ConfirmationRequest {
	return ConfirmationRequest{
		AppointmentID:    "a2c5e9d0-0000-0000-0000-000000000000",
		ClientName:       "Maria Silva",
		ClientWhatsApp:   "11988887777",
		BusinessName:     "Salão Premium",
		BusinessWhatsApp: "11977776666",
		ServiceName:      "Corte",
		Date:             "2025-03-03",
		Time:             "10:00",
	}
}

func TestConfirmation_MontaMensagensELinks(t *testing.T) {
	w := NewWhatsApp()

	out, err := w.Confirmation(confirmationRequest())
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Contains(t, out.ClientMessage, "Maria Silva")
	assert.Contains(t, out.ClientMessage, "Salão Premium")
	assert.Contains(t, out.ClientMessage, "segunda-feira, 03 de março de 2025")
	assert.Contains(t, out.BusinessMessage, "11988887777")

	assert.Contains(t, out.ClientWhatsAppURL, "phone=5511988887777")
	assert.Contains(t, out.BusinessWhatsAppURL, "phone=5511977776666")
}

func TestConfirmation_SemWhatsAppDoNegocio(t *testing.T) {
	w := NewWhatsApp()

	req := confirmationRequest()
	req.BusinessWhatsApp = ""

	out, err := w.Confirmation(req)
	require.NoError(t, err)

	assert.NotEmpty(t, out.ClientWhatsAppURL)
	assert.Empty(t, out.BusinessWhatsAppURL)
}

func TestConfirmation_CamposObrigatorios(t *testing.T) {
	w := NewWhatsApp()

	req := confirmationRequest()
	req.ClientWhatsApp = ""

	_, err := w.Confirmation(req)
	assert.Error(t, err)
}

func TestDeepLink_CodificaEspacosComoPorcento20(t *testing.T) {
	link := DeepLink("11988887777", "olá mundo")

	assert.Contains(t, link, "https://api.whatsapp.com/send?phone=5511988887777&text=")
	assert.Contains(t, link, "%20")
	assert.NotContains(t, link, "+")
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(11) 98888-7777", "5511988887777"}, // 11 dígitos, ganha 55
		{"1133334444", "551133334444"},       // fixo com DDD, 10 dígitos
		{"5511988887777", "5511988887777"},   // já com código do país
		{"123", "123"},                       // curto demais, passa intacto
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPhone(tc.in), tc.in)
	}
}

func TestFormatDatePTBR(t *testing.T) {
	assert.Equal(t, "segunda-feira, 03 de março de 2025", FormatDatePTBR("2025-03-03"))
	assert.Equal(t, "sábado, 08 de março de 2025", FormatDatePTBR("2025-03-08"))

	// inválida passa intacta
	assert.Equal(t, "03/03/2025", FormatDatePTBR("03/03/2025"))
}
