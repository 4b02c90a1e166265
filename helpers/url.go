package helpers

import (
	l "github.com/ahmetb/go-linq/v3"
	"github.com/asaskevich/govalidator"
)

func UrlValida(url string) bool {
	return govalidator.IsURL(url) && govalidator.IsRequestURL(url)
}

// UrlDeDistrito indica se a url está entre os links de distritos conhecidos
func UrlDeDistrito(url string, links []string) bool {
	return l.From(links).Contains(url)
}
