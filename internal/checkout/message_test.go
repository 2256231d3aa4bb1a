package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	"github.com/darkkaiser/rarities-store/internal/catalog/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioQuote() cart.Quote {
	return cart.PriceCart([]cart.Line{
		{ProductRef: 0, Name: "Lamp", ItemNumber: "X-1", RetailPrice: "5.000", WholesalePrice: "4.000", Color: "Red", Quantity: 15},
		{ProductRef: 0, Name: "Lamp", ItemNumber: "X-1", RetailPrice: "5.000", WholesalePrice: "4.000", Color: "Blue", Quantity: 12},
	}, cart.DefaultWholesaleThreshold)
}

func TestBuildMessage_English(t *testing.T) {
	t.Parallel()

	msg, err := BuildMessage(scenarioQuote(), i18n.English)

	require.NoError(t, err)
	assert.Equal(t, "*Creative Rarities Store - New Order*\n\n"+
		"*Lamp*\nID: X-1 | Color: Red\nQty: 15 PCS x 4.000 JOD = 60.000 JOD\n\n"+
		"*Lamp*\nID: X-1 | Color: Blue\nQty: 12 PCS x 4.000 JOD = 48.000 JOD\n\n"+
		"--------------------------\n"+
		"*Order Total: 108.000 JOD*", msg)
}

func TestBuildMessage_Arabic_기본색상(t *testing.T) {
	t.Parallel()

	q := cart.PriceCart([]cart.Line{
		{Name: "Vase", ItemNumber: "V-9", RetailPrice: "2.5", Quantity: 2},
	}, cart.DefaultWholesaleThreshold)

	msg, err := BuildMessage(q, i18n.Arabic)

	require.NoError(t, err)
	assert.Equal(t, "*Creative Rarities Store - طلب جديد*\n\n"+
		"*Vase*\nID: V-9 | اللون: افتراضي\nالكمية: 2 قطعة x 2.500 JOD = 5.000 JOD\n\n"+
		"--------------------------\n"+
		"*مجموع الطلب: 5.000 JOD*", msg)
}

func TestBuildMessage_WithCurrency(t *testing.T) {
	t.Parallel()

	msg, err := BuildMessage(scenarioQuote(), i18n.English, WithCurrency("USD"), WithCurrency(""))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(msg, "*Order Total: 108.000 USD*"))
}

func TestBuildMessage_EmptyCart(t *testing.T) {
	t.Parallel()

	msg, err := BuildMessage(cart.PriceCart(nil, cart.DefaultWholesaleThreshold), i18n.English)

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, msg)
}

func TestDeepLink(t *testing.T) {
	t.Parallel()

	msg := "*Lamp*\nQty: 2 (Red) & more"
	link := DeepLink("962795965910", msg)

	assert.Equal(t, "https://wa.me/962795965910?text=*Lamp*%0AQty%3A%202%20(Red)%20%26%20more", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))
}

// ====================================================================================================
// 주문 서비스
// ====================================================================================================

type recordingNotifier struct {
	messages []string
	accept   bool
}

func (n *recordingNotifier) Notify(message string) bool {
	n.messages = append(n.messages, message)
	return n.accept
}

func TestService_Checkout(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{accept: true}
	s := NewService("962795965910", "", n)

	res, err := s.Checkout(scenarioQuote(), i18n.English)

	require.NoError(t, err)
	assert.Equal(t, "108.000 JOD", res.Total)
	assert.True(t, strings.HasPrefix(res.DeepLink, "https://wa.me/962795965910?text="))
	assert.Equal(t, []string{res.Message}, n.messages)
}

func TestService_Checkout_알림_실패는_주문에_영향이_없다(t *testing.T) {
	t.Parallel()

	s := NewService("1", "JOD", &recordingNotifier{accept: false})

	_, err := s.Checkout(scenarioQuote(), i18n.English)

	assert.NoError(t, err)
}

func TestService_Checkout_비운_장바구니는_주문할_수_없다(t *testing.T) {
	t.Parallel()

	c := cart.New(cart.DefaultWholesaleThreshold)
	for i, no := range []string{"A", "B", "C"} {
		require.NoError(t, c.Add(product.Product{Name: no, ItemNumber: no, RetailPrice: "1", SequenceIndex: i}, ""))
	}
	require.False(t, c.Clear())

	n := &recordingNotifier{accept: true}
	res, err := NewService("1", "", n).Checkout(c.Quote(), i18n.English)

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, res.DeepLink)
	assert.Empty(t, n.messages)
}
