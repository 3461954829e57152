package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSecretsDir - каталог docker secrets.
const DefaultSecretsDir = "/run/secrets"

// SecretsDir возвращает каталог секретов (переопределяется через SECRETS_DIR).
func SecretsDir() string {
	if dir := strings.TrimSpace(os.Getenv("SECRETS_DIR")); dir != "" {
		return dir
	}
	return DefaultSecretsDir
}

// ReadSecret читает значение секрета из файла <SecretsDir>/<secretName>.
// Возвращает ошибку, если файл не найден или пуст.
func ReadSecret(secretName string) (string, error) {
	filePath := filepath.Join(SecretsDir(), secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file %s: %w", filePath, err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", fmt.Errorf("secret file %s is empty", filePath)
	}
	return secret, nil
}

// ReadSecretOrEnv сначала пробует файл секрета, затем переменные окружения по порядку.
// Пустая строка означает, что значение не найдено нигде.
func ReadSecretOrEnv(secretName string, envKeys ...string) string {
	if secret, err := ReadSecret(secretName); err == nil {
		return secret
	}
	for _, key := range envKeys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
