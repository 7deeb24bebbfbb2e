package utils

import (
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// UploadFileName gera um nome único para o arquivo enviado, mantendo a extensão original
func UploadFileName(original string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return id + strings.ToLower(filepath.Ext(original)), nil
}
