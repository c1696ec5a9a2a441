package engine

import "strings"

// ContactURI builds the outbound deep link for a messenger method and a raw
// contact value. Phone-based schemes strip everything but digits; no other
// validation is applied. Unknown methods yield an empty string.
func ContactURI(method, value string) string {
	switch method {
	case "phone":
		return "tel:" + value
	case "whatsapp":
		return "https://wa.me/" + digitsOnly(value)
	case "telegram":
		return "https://t.me/" + strings.TrimPrefix(value, "@")
	case "viber":
		return "viber://chat?number=" + digitsOnly(value)
	case "facebook":
		return "https://m.me/" + value
	default:
		return ""
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
