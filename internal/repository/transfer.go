package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"managedb/internal/errs"
)

// placeholderPassword назначается всем импортированным пользователям,
// его нужно сменить после импорта.
const placeholderPassword = "default_password"

func writeCSVFile(filePath string, header []string, rows [][]string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("не удалось создать файл %s: %w", filePath, errs.ErrIO)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("ошибка при записи CSV: %w", errs.ErrIO)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("ошибка при записи CSV: %w", errs.ErrIO)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("ошибка при записи CSV: %w", errs.ErrIO)
	}

	return nil
}

func readCSVFile(filePath string) (header []string, rows [][]string, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось открыть файл %s: %w", filePath, errs.ErrIO)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("некорректный CSV в %s: %w", filePath, errs.ErrInvalidArgument)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("файл %s пуст, нет строки заголовка: %w", filePath, errs.ErrInvalidArgument)
	}

	return records[0], records[1:], nil
}

func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	return index
}

func writeJSONFile(filePath string, data interface{}) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("не удалось создать файл %s: %w", filePath, errs.ErrIO)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("ошибка при записи JSON: %w", errs.ErrIO)
	}

	return nil
}

func readJSONFile(filePath string, data interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("не удалось открыть файл %s: %w", filePath, errs.ErrIO)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(data); err != nil {
		return fmt.Errorf("некорректный JSON в %s: %w", filePath, errs.ErrInvalidArgument)
	}

	return nil
}
