package service

import (
	"context"
	"fmt"

	"managedb/internal/errs"
	"managedb/internal/repository"
	"managedb/internal/storage"
)

// bulkRepository - общая часть UserRepository и PostRepository,
// нужная для импорта/экспорта.
type bulkRepository interface {
	ExportToCSV(ctx context.Context, filePath string) (bool, error)
	ImportFromCSV(ctx context.Context, filePath string) (int, error)
	ExportToJSON(ctx context.Context, filePath string) (bool, error)
	ImportFromJSON(ctx context.Context, filePath string) (int, error)
}

type TransferService interface {
	Export(ctx context.Context, collection, format, filePath string, upload bool) (bool, string, error)
	Import(ctx context.Context, collection, format, filePath string) (int, error)
}

type transferService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	storage  storage.Storage
}

func NewTransferService(userRepo repository.UserRepository, postRepo repository.PostRepository, storage storage.Storage) TransferService {
	return &transferService{
		userRepo: userRepo,
		postRepo: postRepo,
		storage:  storage,
	}
}

func (s *transferService) repo(collection string) (bulkRepository, error) {
	switch collection {
	case "users":
		return s.userRepo, nil
	case "posts":
		return s.postRepo, nil
	default:
		return nil, fmt.Errorf("неизвестная коллекция %q: %w", collection, errs.ErrInvalidArgument)
	}
}

// Export выгружает коллекцию в файл и, если запрошено, отправляет файл
// в хранилище экспортов. Возвращает false без ошибки для пустой коллекции.
func (s *transferService) Export(ctx context.Context, collection, format, filePath string, upload bool) (bool, string, error) {
	repo, err := s.repo(collection)
	if err != nil {
		return false, "", err
	}

	var exported bool
	switch format {
	case "csv":
		exported, err = repo.ExportToCSV(ctx, filePath)
	case "json":
		exported, err = repo.ExportToJSON(ctx, filePath)
	default:
		return false, "", fmt.Errorf("неизвестный формат %q: %w", format, errs.ErrInvalidArgument)
	}

	if err != nil || !exported {
		return exported, "", err
	}

	if !upload || s.storage == nil {
		return true, "", nil
	}

	objectName, err := s.storage.UploadExport(ctx, collection, filePath)
	if err != nil {
		return true, "", fmt.Errorf("выгрузка записана, но не отправлена в хранилище: %w", err)
	}

	return true, objectName, nil
}

func (s *transferService) Import(ctx context.Context, collection, format, filePath string) (int, error) {
	repo, err := s.repo(collection)
	if err != nil {
		return 0, err
	}

	switch format {
	case "csv":
		return repo.ImportFromCSV(ctx, filePath)
	case "json":
		return repo.ImportFromJSON(ctx, filePath)
	default:
		return 0, fmt.Errorf("неизвестный формат %q: %w", format, errs.ErrInvalidArgument)
	}
}
