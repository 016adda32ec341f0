package services

import "math/rand/v2"

var quotes = []string{
	"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
	"Don't watch the clock; do what it does. Keep going. - Sam Levenson",
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Believe you can and you're halfway there. - Theodore Roosevelt",
	"It does not matter how slowly you go as long as you do not stop. - Confucius",
	"Your time is limited, don't waste it living someone else's life. - Steve Jobs",
}

// RandomQuote picks one motivational quote uniformly at random.
func RandomQuote() string {
	return quotes[rand.IntN(len(quotes))]
}
