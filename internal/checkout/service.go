package checkout

import (
	"github.com/darkkaiser/rarities-store/internal/cart"
	"github.com/darkkaiser/rarities-store/internal/catalog/i18n"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
)

// Result 주문 메시지와 해당 메시지로 대화를 여는 딥링크입니다.
type Result struct {
	Message  string `json:"message"`
	DeepLink string `json:"deep_link"`
	Total    string `json:"total"`
}

// Service 가게 연락처와 통화 설정을 가지고 주문을 처리합니다.
type Service struct {
	phone    string
	currency string
	notifier OrderNotifier
}

// NewService 주문 서비스를 생성합니다. notifier가 nil이면 알림을 보내지 않습니다.
func NewService(phone, currency string, notifier OrderNotifier) *Service {
	if currency == "" {
		currency = DefaultCurrency
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &Service{
		phone:    phone,
		currency: currency,
		notifier: notifier,
	}
}

// Checkout 주문 메시지와 딥링크를 만들고, 설정된 경우 가게 주인에게 알림을 보냅니다.
// 알림 발송 결과는 주문 처리에 영향을 주지 않습니다.
func (s *Service) Checkout(q cart.Quote, lang i18n.Lang) (Result, error) {
	message, err := BuildMessage(q, lang, WithCurrency(s.currency))
	if err != nil {
		return Result{}, err
	}

	if !s.notifier.Notify(message) {
		applog.WithComponentAndFields(component, applog.Fields{
			"lines": len(q.Lines),
		}).Warn("주문 알림 생략: 알림 대기열에 넣지 못함")
	}

	return Result{
		Message:  message,
		DeepLink: DeepLink(s.phone, message),
		Total:    FormatMoney(q.Total, s.currency),
	}, nil
}
