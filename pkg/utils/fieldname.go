package utils

import (
	"reflect"
	"strings"
)

// jsonFieldName usa o nome da tag json nas mensagens de validação
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
