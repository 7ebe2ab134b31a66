package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

func sampleLines() []domain.CartLine {
	return []domain.CartLine{
		{Product: domain.Product{ID: "a", Name: "nameA", Price: 500}, Quantity: 2},
		{Product: domain.Product{ID: "b", Name: "nameB", Price: 1000}, Quantity: 1},
	}
}

func TestOrderMessage_PickupCash(t *testing.T) {
	f := NewFormatter("", "http://gnamgnam.nordikforge.com/")

	msg := f.OrderMessage(sampleLines(), 2000, CustomerInfo{
		FirstName:     "Awa",
		LastName:      "Diallo",
		Phone:         "90123456",
		DeliveryMode:  domain.DeliveryModePickup,
		PaymentMethod: domain.PaymentCash,
		DeliveryFee:   0,
	})

	assert.Contains(t, msg, "2 x nameA")
	assert.Contains(t, msg, "1 x nameB")
	assert.Contains(t, msg, "└ 1000 FCFA")
	assert.Contains(t, msg, "Sous-total: 2000 FCFA")
	assert.NotContains(t, msg, "Livraison:")
	assert.Contains(t, msg, "*💰 TOTAL: 2000 FCFA*")
	assert.Contains(t, msg, "🏪 Retrait en boutique")
	assert.Contains(t, msg, "💵 Espèces à la remise")
	assert.NotContains(t, msg, "Quartier:")
}

func TestOrderMessage_HomeDeliveryWithFee(t *testing.T) {
	f := NewFormatter("", "http://gnamgnam.nordikforge.com/")

	msg := f.OrderMessage(sampleLines(), 2000, CustomerInfo{
		FirstName:     "Awa",
		LastName:      "Diallo",
		Phone:         "90123456",
		DeliveryMode:  domain.DeliveryModeHome,
		Zone:          "Yantala",
		PaymentMethod: domain.PaymentCash,
		DeliveryFee:   1200,
	})

	assert.Contains(t, msg, "📍 Quartier: Yantala")
	assert.Contains(t, msg, "Sous-total: 2000 FCFA")
	assert.Contains(t, msg, "Livraison: 1200 FCFA")
	assert.Contains(t, msg, "*💰 TOTAL: 3200 FCFA*")
	assert.Contains(t, msg, "💵 Espèces à la livraison")
}

func TestOrderMessage_SectionOrder(t *testing.T) {
	f := NewFormatter("", "")

	msg := f.OrderMessage(sampleLines(), 2000, CustomerInfo{
		FirstName:     "Awa",
		LastName:      "Diallo",
		Phone:         "90123456",
		DeliveryMode:  domain.DeliveryModeHome,
		Zone:          "Plateau",
		AddressDetail: "Porte bleue",
		PaymentMethod: domain.PaymentNita,
		DeliveryFee:   1000,
	})

	sections := []string{
		"NOUVELLE COMMANDE",
		"*👤 CLIENT*",
		"*📦 LIVRAISON*",
		"📝 Indications: Porte bleue",
		"📱 Nita",
		"*🛒 PANIER*",
		"Sous-total:",
		"*💰 TOTAL:",
	}
	pos := -1
	for _, s := range sections {
		next := strings.Index(msg, s)
		require.Greater(t, next, pos, "section %q out of order", s)
		pos = next
	}
}

func TestOrderMessage_OmitsEmptyAddressDetail(t *testing.T) {
	f := NewFormatter("", "")

	msg := f.OrderMessage(sampleLines(), 2000, CustomerInfo{
		DeliveryMode:  domain.DeliveryModeHome,
		Zone:          "Plateau",
		PaymentMethod: domain.PaymentCash,
		DeliveryFee:   1000,
	})

	assert.NotContains(t, msg, "Indications")
}

func TestCartMessage(t *testing.T) {
	f := NewFormatter("", "http://gnamgnam.nordikforge.com/")

	msg := f.CartMessage(sampleLines(), 2000)

	assert.Contains(t, msg, "BON DE COMMANDE")
	assert.Contains(t, msg, "- 2 x nameA (500 FCFA)")
	assert.Contains(t, msg, "TOTAL À RÉGLER : 2000 FCFA")
	assert.Contains(t, msg, "Lien panier : http://gnamgnam.nordikforge.com/")
	assert.NotContains(t, msg, "CLIENT")
	assert.NotContains(t, msg, "LIVRAISON")
}

func TestOrderURL_EncodesMessageForConfiguredNumber(t *testing.T) {
	f := NewFormatter("22790000000", "")

	raw := f.OrderURL(sampleLines(), 2000, CustomerInfo{
		FirstName:     "Awa",
		LastName:      "Diallo",
		Phone:         "90123456",
		DeliveryMode:  domain.DeliveryModePickup,
		PaymentMethod: domain.PaymentCash,
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/22790000000", u.Path)
	assert.Contains(t, u.Query().Get("text"), "NOUVELLE COMMANDE")
}

func TestFormatter_FallsBackToDefaultNumber(t *testing.T) {
	f := NewFormatter("", "")
	raw := f.CartURL(sampleLines(), 2000)
	assert.True(t, strings.HasPrefix(raw, "https://wa.me/"+DefaultNumber+"?text="))
}
