package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCount formata um inteiro com separador de milhar do pt-BR (ex: 1.234).
func FormatCount(n int) string {
	return ptBR.Sprintf("%d", n)
}
