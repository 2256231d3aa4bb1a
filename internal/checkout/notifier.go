package checkout

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	apperrors "github.com/darkkaiser/rarities-store/internal/pkg/errors"
	"github.com/darkkaiser/rarities-store/internal/pkg/mark"
	applog "github.com/darkkaiser/rarities-store/pkg/log"
	"github.com/darkkaiser/rarities-store/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const component = "checkout.notifier"

const (
	// notifierQueueSize 발송 대기열 크기입니다. 가득 차면 새 주문 알림은 버립니다.
	notifierQueueSize = 30

	// telegramHTTPTimeout 텔레그램 API 호출 타임아웃
	telegramHTTPTimeout = 30 * time.Second

	// drainTimeout 종료 시 대기열에 남은 알림을 발송하는 최대 시간
	drainTimeout = 10 * time.Second

	defaultSendAttempts = 3
	defaultRetryDelay   = time.Second
)

// OrderNotifier 주문 메시지를 가게 주인에게 전달합니다. 호출자를 블로킹하지 않습니다.
type OrderNotifier interface {
	// Notify 메시지를 발송 대기열에 넣습니다. 대기열이 가득 찼거나 종료된 경우 false를 반환합니다.
	Notify(message string) bool
}

// NopNotifier 아무것도 하지 않는 OrderNotifier입니다. 알림이 비활성화된 경우 사용합니다.
type NopNotifier struct{}

// Notify 항상 true를 반환합니다.
func (NopNotifier) Notify(string) bool { return true }

// botSender 텔레그램 봇 API 중 메시지 발송만 추상화한 인터페이스입니다.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier 주문 메시지를 텔레그램 채팅방으로 발송합니다.
//
// Notify는 대기열에 넣기만 하고, 실제 발송은 Start로 실행한 고루틴이 순서대로 처리합니다.
// 텔레그램 정책(채팅방당 초당 1회)에 맞춰 발송 속도를 제한합니다.
type TelegramNotifier struct {
	chatID int64
	bot    botSender

	queue   chan string
	limiter *rate.Limiter

	attempts   int
	retryDelay time.Duration

	closed atomic.Bool
}

var _ OrderNotifier = (*TelegramNotifier)(nil)
var _ OrderNotifier = NopNotifier{}

// NewTelegramNotifier 봇 토큰으로 텔레그램 클라이언트를 초기화합니다.
// 토큰 검증을 위해 텔레그램 API(getMe)를 한 번 호출합니다.
func NewTelegramNotifier(botToken string, chatID int64, debug bool) (*TelegramNotifier, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.MaskSensitiveData(botToken),
		"chat_id":   chatID,
	}).Debug("텔레그램 알림 초기화: 봇 클라이언트 생성")

	client := &http.Client{Timeout: telegramHTTPTimeout}
	bot, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}
	bot.Debug = debug

	return newTelegramNotifier(bot, chatID), nil
}

func newTelegramNotifier(bot botSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		chatID:     chatID,
		bot:        bot,
		queue:      make(chan string, notifierQueueSize),
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
		attempts:   defaultSendAttempts,
		retryDelay: defaultRetryDelay,
	}
}

// Notify 주문 메시지에 알림 마크를 붙여 발송 대기열에 넣습니다.
func (n *TelegramNotifier) Notify(message string) bool {
	if n.closed.Load() {
		return false
	}

	select {
	case n.queue <- mark.NewOrder.String() + " " + message:
		return true
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id":     n.chatID,
			"queue_depth": len(n.queue),
		}).Warn("주문 알림 폐기: 발송 대기열 가득 참")
		return false
	}
}

// Start 발송 고루틴을 시작합니다. ctx가 취소되면 대기열에 남은 알림을 발송한 뒤 종료합니다.
func (n *TelegramNotifier) Start(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		n.run(ctx)
	}()
}

func (n *TelegramNotifier) run(ctx context.Context) {
	for {
		select {
		case msg := <-n.queue:
			// 종료 신호와 동시에 꺼낸 알림도 끝까지 발송한다.
			n.send(context.WithoutCancel(ctx), msg)

		case <-ctx.Done():
			n.closed.Store(true)
			n.drain()
			return
		}
	}
}

func (n *TelegramNotifier) drain() {
	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case msg := <-n.queue:
			if drainCtx.Err() != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"chat_id":             n.chatID,
					"remaining_in_buffer": len(n.queue) + 1,
				}).Warn("잔여 주문 알림 폐기: 종료 대기 시간 초과")
				return
			}
			n.send(drainCtx, msg)

		default:
			return
		}
	}
}

// send 메시지 하나를 발송합니다. 실패하면 retryDelay 간격으로 재시도합니다.
func (n *TelegramNotifier) send(ctx context.Context, message string) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"chat_id": n.chatID,
				"panic":   r,
			}).Error("주문 알림 발송 실패: 발송 중 패닉 발생 (해당 건 스킵)")
		}
	}()

	var lastErr error
Retry:
	for attempt := 1; attempt <= n.attempts; attempt++ {
		if err := n.limiter.Wait(ctx); err != nil {
			lastErr = err
			break
		}

		if _, lastErr = n.bot.Send(tgbotapi.NewMessage(n.chatID, message)); lastErr == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"chat_id": n.chatID,
				"attempt": attempt,
			}).Debug("주문 알림 발송 완료")
			return
		}

		if attempt < n.attempts {
			select {
			case <-time.After(n.retryDelay):
			case <-ctx.Done():
				break Retry
			}
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"chat_id": n.chatID,
		"error":   lastErr,
	}).Error("주문 알림 발송 실패: 재시도 횟수 초과")
}
