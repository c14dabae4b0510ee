package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/findify-app/findify-be/internal/models"
)

// LostItemServiceProvider defines the interface for lost item services.
type LostItemServiceProvider interface {
	CreateLostItem(ownerID string, item models.LostItem) (models.LostItem, error)
	ListLostItems(category string) ([]models.LostItem, error)
	ListLostItemsByOwner(ownerID string) ([]models.LostItem, error)
	ResolveLostItem(id, resolverEmail string) error
	DeleteClaimedBefore(cutoff time.Time) (int64, error)
}

// LostItemService provides business logic for lost item reports.
type LostItemService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewLostItemService creates a new LostItemService.
func NewLostItemService(db *sql.DB, events EventServiceProvider) *LostItemService {
	return &LostItemService{db: db, events: events}
}

// CreateLostItem stores a new lost item report owned by ownerID.
func (s *LostItemService) CreateLostItem(ownerID string, item models.LostItem) (models.LostItem, error) {
	if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.DateLost) == "" ||
		strings.TrimSpace(item.TimeLost) == "" || strings.TrimSpace(item.Location) == "" ||
		strings.TrimSpace(item.Phone) == "" || strings.TrimSpace(item.Email) == "" {
		return models.LostItem{}, fmt.Errorf("name, dateLost, timeLost, location, phone and email are required: %w", ErrInvalidInput)
	}

	item.ID = uuid.New().String()
	item.OwnerUserID = ownerID
	item.Status = models.StatusActive
	item.FoundByEmail = ""
	item.CreatedAt = time.Now()
	if strings.TrimSpace(item.Category) == "" {
		item.Category = models.DefaultCategory
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO lost_items (id, name, color, brand, unique_id, date_lost, time_lost, image_url, location, category, phone, email, owner_user_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return models.LostItem{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(item.ID, item.Name, item.Color, item.Brand, item.UniqueID, item.DateLost, item.TimeLost,
		item.ImageURL, item.Location, item.Category, item.Phone, item.Email, item.OwnerUserID, item.Status, item.CreatedAt)
	if err != nil {
		return models.LostItem{}, err
	}

	s.logEvent("item.lost.reported", "info", "lost item "+item.Name, &item.OwnerUserID)
	return item, nil
}

// ListLostItems returns active lost items, newest first, optionally filtered
// by category.
func (s *LostItemService) ListLostItems(category string) ([]models.LostItem, error) {
	query := "SELECT " + lostItemColumns + " FROM lost_items WHERE status = ?"
	args := []interface{}{models.StatusActive}
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"
	return s.queryLostItems(query, args...)
}

// ListLostItemsByOwner returns every lost item owned by ownerID regardless of
// status, newest first.
func (s *LostItemService) ListLostItemsByOwner(ownerID string) ([]models.LostItem, error) {
	query := "SELECT " + lostItemColumns + " FROM lost_items WHERE owner_user_id = ? ORDER BY created_at DESC"
	return s.queryLostItems(query, ownerID)
}

// ResolveLostItem marks the item claimed and records who found it. Resolving
// an already claimed item succeeds again and overwrites the recorded email.
func (s *LostItemService) ResolveLostItem(id, resolverEmail string) error {
	res, err := s.db.Exec("UPDATE lost_items SET status = ?, found_by_email = ? WHERE id = ?",
		models.StatusClaimed, resolverEmail, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("lost item %s: %w", id, ErrNotFound)
	}

	s.logEvent("item.lost.resolved", "info", "lost item "+id+" marked claimed", nil)
	return nil
}

// DeleteClaimedBefore removes claimed lost items created before cutoff and
// returns how many were deleted.
func (s *LostItemService) DeleteClaimedBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM lost_items WHERE status = ? AND created_at < ?", models.StatusClaimed, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const lostItemColumns = "id, name, color, brand, unique_id, date_lost, time_lost, image_url, location, category, phone, email, owner_user_id, status, found_by_email, created_at"

func (s *LostItemService) queryLostItems(query string, args ...interface{}) ([]models.LostItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.LostItem{}
	for rows.Next() {
		var it models.LostItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Color, &it.Brand, &it.UniqueID, &it.DateLost, &it.TimeLost,
			&it.ImageURL, &it.Location, &it.Category, &it.Phone, &it.Email, &it.OwnerUserID, &it.Status,
			&it.FoundByEmail, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *LostItemService) logEvent(eventType, level, message string, userID *string) {
	if s.events == nil {
		return
	}
	_ = s.events.CreateEvent(eventType, level, message, userID)
}
