package user

type User struct {
	Id        int
	Uid       string
	Name      string
	Email     string
	AvatarUrl string
	Settings  Settings
}

type PaymentFrequency string

const (
	PayMonthly  PaymentFrequency = "MONTHLY"
	PayBiweekly PaymentFrequency = "BIWEEKLY"
	PayWeekly   PaymentFrequency = "WEEKLY"
)

// Settings drive regional benchmark selection and display formatting only.
// Core arithmetic never branches on them beyond picking benchmark constants.
type Settings struct {
	Currency         string
	Locale           string
	ColombianMode    bool
	PaymentFrequency PaymentFrequency
}

func DefaultSettings() Settings {
	return Settings{
		Currency:         "USD",
		Locale:           "en-US",
		ColombianMode:    false,
		PaymentFrequency: PayMonthly,
	}
}
