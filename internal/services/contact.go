package services

import (
  "context"
  "fmt"
  "strings"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/buildflow-backend/internal/logger"
  "github.com/yungbote/buildflow-backend/internal/repos"
  "github.com/yungbote/buildflow-backend/internal/types"
)

type ContactService interface {
  SubmitMessage(ctx context.Context, msg *types.ContactMessage) (*types.ContactMessage, error)
  ListMessages(ctx context.Context) ([]*types.ContactMessage, error)
  MarkMessageRead(ctx context.Context, id uuid.UUID) error
  DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
  db          *gorm.DB
  log         *logger.Logger
  contactRepo repos.ContactMessageRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactMessageRepo) ContactService {
  serviceLog := log.With("service", "ContactService")
  return &contactService{db: db, log: serviceLog, contactRepo: contactRepo}
}

func (s *contactService) SubmitMessage(ctx context.Context, msg *types.ContactMessage) (*types.ContactMessage, error) {
  if msg == nil {
    return nil, fmt.Errorf("Missing message payload")
  }
  msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))
  if msg.FirstName == "" || msg.LastName == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
    return nil, fmt.Errorf("Name, email, subject and message are required")
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    msg.ID = uuid.New()
    if _, cErr := s.contactRepo.Create(ctx, tx, msg); cErr != nil {
      return fmt.Errorf("Failed to create contact message: %w", cErr)
    }
    return nil
  }); err != nil {
    return nil, err
  }
  return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]*types.ContactMessage, error) {
  messages, err := s.contactRepo.GetAll(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list contact messages: %w", err)
  }
  return messages, nil
}

func (s *contactService) MarkMessageRead(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.contactRepo.MarkRead(ctx, tx, id)
  })
}

func (s *contactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := s.contactRepo.DeleteByID(ctx, tx, id); dErr != nil {
      return fmt.Errorf("Failed to delete contact message: %w", dErr)
    }
    return nil
  })
}
