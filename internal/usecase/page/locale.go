package page

import "github.com/LavaJover/shvark-storefront-bot/internal/domain"

// Locale carries every user-facing string of the public pages.
type Locale struct {
	Code          string
	OrderHeading  string
	PriceLabel    string
	StatusLabel   string
	Statuses      map[domain.OrderStatus]string
	ReceiverLabel string
	PickupPrompt  string
	PickupButton  string
	PickupDone    string
	WaitHeading   string
	WaitText      string
	SupportLabel  string
}

func (l Locale) StatusText(s domain.OrderStatus) string {
	if text, ok := l.Statuses[s]; ok {
		return text
	}
	return string(s)
}

var locales = map[string]Locale{
	"en": {
		Code:          "en",
		OrderHeading:  "Your order",
		PriceLabel:    "Total",
		StatusLabel:   "Status",
		ReceiverLabel: "Receiver",
		Statuses: map[domain.OrderStatus]string{
			domain.StatusCreated:   "Processing",
			domain.StatusShipped:   "Shipped",
			domain.StatusDelivered: "Delivered",
			domain.StatusCanceled:  "Cancelled",
		},
		PickupPrompt: "Choose where you want to collect your order",
		PickupButton: "Confirm pickup point",
		PickupDone:   "Thank you! Your order will be waiting at",
		WaitHeading:  "We'll be right back",
		WaitText:     "This page is temporarily unavailable. Please try again later.",
		SupportLabel: "Questions about your order? Write to us",
	},
	"de": {
		Code:          "de",
		OrderHeading:  "Ihre Bestellung",
		PriceLabel:    "Gesamt",
		StatusLabel:   "Status",
		ReceiverLabel: "Empfänger",
		Statuses: map[domain.OrderStatus]string{
			domain.StatusCreated:   "In Bearbeitung",
			domain.StatusShipped:   "Versendet",
			domain.StatusDelivered: "Zugestellt",
			domain.StatusCanceled:  "Storniert",
		},
		PickupPrompt: "Wählen Sie eine Abholstation",
		PickupButton: "Abholstation bestätigen",
		PickupDone:   "Vielen Dank! Ihre Bestellung liegt bereit in",
		WaitHeading:  "Gleich wieder da",
		WaitText:     "Diese Seite ist vorübergehend nicht verfügbar.",
		SupportLabel: "Fragen zur Bestellung? Schreiben Sie uns",
	},
	"kz": {
		Code:          "kz",
		OrderHeading:  "Ваш заказ",
		PriceLabel:    "Итого",
		StatusLabel:   "Статус",
		ReceiverLabel: "Получатель",
		Statuses: map[domain.OrderStatus]string{
			domain.StatusCreated:   "В обработке",
			domain.StatusShipped:   "Отправлен",
			domain.StatusDelivered: "Доставлен",
			domain.StatusCanceled:  "Отменён",
		},
		PickupPrompt: "Выберите пункт выдачи",
		PickupButton: "Подтвердить пункт выдачи",
		PickupDone:   "Спасибо! Заказ будет ждать вас в пункте",
		WaitHeading:  "Скоро вернёмся",
		WaitText:     "Страница временно недоступна. Попробуйте позже.",
		SupportLabel: "Вопросы по заказу? Напишите нам",
	},
}

// LocaleFor picks the locale for a country code, falling back to English.
func LocaleFor(countryCode string) Locale {
	if l, ok := locales[countryCode]; ok {
		return l
	}
	return locales["en"]
}
