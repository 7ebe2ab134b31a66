package checkout

import (
	"regexp"
	"strings"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

// Form is the typed checkout form: one field per input. Field names in
// errors match the JSON names the client sends.
type Form struct {
	FirstName     string               `json:"prenom"`
	LastName      string               `json:"nom"`
	Phone         string               `json:"telephone"`
	DeliveryMode  domain.DeliveryMode  `json:"mode_livraison"`
	Zone          string               `json:"quartier"`
	AddressDetail string               `json:"description_localisation"`
	PaymentMethod domain.PaymentMethod `json:"moyen_paiement"`
}

// FieldErrors maps a field name to its validation message. An absent
// key means the field is valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

var phonePattern = regexp.MustCompile(`^[0-9]{8,15}$`)

// ValidPhone reports whether the phone is 8 to 15 decimal digits after
// stripping whitespace.
func ValidPhone(phone string) bool {
	cleaned := strings.Join(strings.Fields(phone), "")
	return phonePattern.MatchString(cleaned)
}

// Validate checks every field independently and returns the full error
// map. The zone is only required for home delivery.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.FirstName) == "" {
		errs["prenom"] = "Prénom requis"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["nom"] = "Nom requis"
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs["telephone"] = "Numéro requis"
	} else if !ValidPhone(f.Phone) {
		errs["telephone"] = "Numéro invalide"
	}
	if f.DeliveryMode == domain.DeliveryModeHome && f.Zone == "" {
		errs["quartier"] = "Veuillez sélectionner un quartier"
	}

	return errs
}

// Sanitize strips angle brackets and trims surrounding whitespace.
// Applied to free text at the point of use (message formatting,
// persistence), not at input time.
func Sanitize(input string) string {
	cleaned := strings.NewReplacer("<", "", ">", "").Replace(input)
	return strings.TrimSpace(cleaned)
}
