// Package l10n renders user-facing menu and order text in the two
// supported languages. The primary language is English; Arabic values fall
// back to the primary text when a localized literal is missing upstream.
package l10n

import (
	"mezze/internal/domain/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders prices with locale-aware digit grouping and the
// configured currency literal.
type Formatter struct {
	currency map[entity.Language]string
	printers map[entity.Language]*message.Printer
}

// NewFormatter creates a Formatter with the given currency literals.
func NewFormatter(currency, currencyAr string) *Formatter {
	return &Formatter{
		currency: map[entity.Language]string{
			entity.LanguageEnglish: currency,
			entity.LanguageArabic:  currencyAr,
		},
		printers: map[entity.Language]*message.Printer{
			entity.LanguageEnglish: message.NewPrinter(language.English),
			entity.LanguageArabic:  message.NewPrinter(language.Arabic),
		},
	}
}

// FormatPrice renders a catalog price. Policy for an unset price is the
// localized "price on request" literal. A range with equal bounds
// collapses to a single value; unequal bounds render as "min - max".
func (f *Formatter) FormatPrice(p entity.Price, lang entity.Language) string {
	if !f.valid(lang) {
		lang = entity.LanguageEnglish
	}

	if !p.IsSet() {
		return PriceOnRequest(lang)
	}

	if p.IsRange() {
		return f.printers[lang].Sprintf("%s %v - %v",
			f.currency[lang],
			number.Decimal(p.Min(), number.MaxFractionDigits(2)),
			number.Decimal(p.Max(), number.MaxFractionDigits(2)),
		)
	}

	return f.FormatAmount(p.Min(), lang)
}

// FormatAmount renders a single monetary amount, e.g. a cart line total.
func (f *Formatter) FormatAmount(amount float64, lang entity.Language) string {
	if !f.valid(lang) {
		lang = entity.LanguageEnglish
	}

	return f.printers[lang].Sprintf("%s %v",
		f.currency[lang],
		number.Decimal(amount, number.MaxFractionDigits(2)),
	)
}

func (f *Formatter) valid(lang entity.Language) bool {
	_, ok := f.printers[lang]

	return ok
}

// Greeting is the opening line of the composed order message.
func Greeting(lang entity.Language) string {
	if lang == entity.LanguageArabic {
		return "مرحباً! أود أن أطلب الطلب التالي:"
	}

	return "Hello! I would like to place the following order:"
}

// TotalLabel labels the grand total line of the order message.
func TotalLabel(lang entity.Language) string {
	if lang == entity.LanguageArabic {
		return "الإجمالي"
	}

	return "Total"
}

// NotesLabel labels the optional notes section of the order message.
func NotesLabel(lang entity.Language) string {
	if lang == entity.LanguageArabic {
		return "ملاحظات"
	}

	return "Notes"
}

// ThankYou is the closing line of the composed order message.
func ThankYou(lang entity.Language) string {
	if lang == entity.LanguageArabic {
		return "شكراً لكم!"
	}

	return "Thank you!"
}

// NoResults is shown when a search matches no dishes.
func NoResults(lang entity.Language) string {
	if lang == entity.LanguageArabic {
		return "لا توجد أطباق مطابقة لبحثك"
	}

	return "No dishes match your search"
}

// PriceOnRequest is the canonical rendering of an unset price.
func PriceOnRequest(lang entity.Language) string {
	if lang == entity.LanguageArabic {
		return "السعر عند الطلب"
	}

	return "Price on request"
}
