package quote

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/LucasManfrin/Orcamentos/internal/money"
)

// PublicLink builds the shareable URL for a quote.
func PublicLink(baseURL, quoteID string) string {
	return strings.TrimRight(baseURL, "/") + "/quote/" + url.PathEscape(quoteID)
}

// ContactMessage is the prefilled text a client sends when reaching out
// about a quote.
func ContactMessage(professionalName string, q *Quote) string {
	names := make([]string, len(q.Services))
	for i, line := range q.Services {
		names[i] = line.Name
	}
	return fmt.Sprintf("Olá %s! Vi seu orçamento de %s por %s. Gostaria de mais informações!",
		professionalName, strings.Join(names, " + "), money.Format(q.Total))
}

// RenewalMessage is the prefilled text a client sends to ask for an
// updated quote once the original has expired.
func RenewalMessage(professionalName string) string {
	return fmt.Sprintf("Olá %s! O orçamento que recebi expirou. Pode me enviar um novo?",
		professionalName)
}

// WhatsAppLink builds a wa.me deep link with a prefilled message. Only
// digits survive from the phone number. An empty number yields an empty
// link so callers can omit the contact option.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(message)
}

// MailtoLink builds a mailto URL with subject and body prefilled.
func MailtoLink(email, subject, body string) string {
	if email == "" {
		return ""
	}
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	return "mailto:" + email + "?" + q.Encode()
}
