package notify

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ultramind-solutions/agendepro/internal/validators"
)

// ConfirmationRequest carrega os dados do agendamento recém-criado para
// a montagem das mensagens de confirmação.
type ConfirmationRequest struct {
	AppointmentID    string `json:"appointment_id"`
	ClientName       string `json:"client_name"`
	ClientWhatsApp   string `json:"client_whatsapp"`
	BusinessName     string `json:"business_name"`
	BusinessWhatsApp string `json:"business_whatsapp"`
	ServiceName      string `json:"service_name"`
	Date             string `json:"date"`
	Time             string `json:"time"`
}

// Confirmation é a resposta do colaborador de mensagens: deep links do
// WhatsApp e os textos prontos. Nunca altera estado de agendamento.
type Confirmation struct {
	Success             bool   `json:"success"`
	ClientWhatsAppURL   string `json:"clientWhatsAppUrl"`
	BusinessWhatsAppURL string `json:"businessWhatsAppUrl,omitempty"`
	ClientMessage       string `json:"clientMessage"`
	BusinessMessage     string `json:"businessMessage"`
}

type WhatsApp struct{}

func NewWhatsApp() *WhatsApp {
	return &WhatsApp{}
}

func (w *WhatsApp) Confirmation(req ConfirmationRequest) (*Confirmation, error) {
	if req.ClientName == "" || req.ClientWhatsApp == "" || req.BusinessName == "" ||
		req.ServiceName == "" || req.Date == "" || req.Time == "" {
		return nil, fmt.Errorf("notify: missing required fields for confirmation")
	}

	clientMsg := clientMessage(req)
	businessMsg := businessMessage(req)

	out := &Confirmation{
		Success:           true,
		ClientWhatsAppURL: DeepLink(req.ClientWhatsApp, clientMsg),
		ClientMessage:     clientMsg,
		BusinessMessage:   businessMsg,
	}

	if req.BusinessWhatsApp != "" {
		out.BusinessWhatsAppURL = DeepLink(req.BusinessWhatsApp, businessMsg)
	}

	return out, nil
}

func clientMessage(req ConfirmationRequest) string {
	return fmt.Sprintf(`✅ *Agendamento confirmado!*

Olá %s, seu horário foi confirmado com sucesso.

🏢 *%s*
🗓 *Data:* %s
⏰ *Horário:* %s
💼 *Serviço:* %s

Qualquer dúvida, estamos à disposição no WhatsApp.

_Agendamento realizado via UltraMind_`,
		req.ClientName, req.BusinessName, FormatDatePTBR(req.Date), req.Time, req.ServiceName)
}

func businessMessage(req ConfirmationRequest) string {
	return fmt.Sprintf(`📢 *Novo agendamento!*

👤 *Cliente:* %s
📞 *WhatsApp:* %s
🗓 *Data:* %s
⏰ *Horário:* %s
💼 *Serviço:* %s

_Notificação automática UltraMind_`,
		req.ClientName, req.ClientWhatsApp, FormatDatePTBR(req.Date), req.Time, req.ServiceName)
}

// DeepLink monta a URL api.whatsapp.com/send com o texto pré-preenchido.
func DeepLink(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", FormatPhone(phone), encoded)
}

// FormatPhone reduz aos dígitos e prefixa o código do Brasil em números
// locais de 10 ou 11 dígitos (DDD + número).
func FormatPhone(phone string) string {
	cleaned := validators.NormalizeWhatsApp(phone)
	if len(cleaned) == 10 || len(cleaned) == 11 {
		return "55" + cleaned
	}
	return cleaned
}

var weekdaysPTBR = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var monthsPTBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDatePTBR converte "YYYY-MM-DD" em data longa pt-BR, por exemplo
// "segunda-feira, 03 de março de 2025". Datas inválidas passam intactas.
func FormatDatePTBR(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}

	return fmt.Sprintf("%s, %02d de %s de %d",
		weekdaysPTBR[d.Weekday()], d.Day(), monthsPTBR[d.Month()-1], d.Year())
}
