package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/findify-app/findify-be/internal/models"
)

// FoundItemServiceProvider defines the interface for found item services.
type FoundItemServiceProvider interface {
	CreateFoundItem(ownerID string, item models.FoundItem) (models.FoundItem, error)
	ListFoundItems(category string) ([]models.FoundItem, error)
	ListFoundItemsByOwner(ownerID string) ([]models.FoundItem, error)
	ResolveFoundItem(id, claimerEmail string) error
	DeleteClaimedBefore(cutoff time.Time) (int64, error)
}

// FoundItemService provides business logic for found item reports.
type FoundItemService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewFoundItemService creates a new FoundItemService.
func NewFoundItemService(db *sql.DB, events EventServiceProvider) *FoundItemService {
	return &FoundItemService{db: db, events: events}
}

// CreateFoundItem stores a new found item report owned by ownerID.
func (s *FoundItemService) CreateFoundItem(ownerID string, item models.FoundItem) (models.FoundItem, error) {
	if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.DateFound) == "" ||
		strings.TrimSpace(item.Location) == "" || strings.TrimSpace(item.Phone) == "" ||
		strings.TrimSpace(item.Email) == "" {
		return models.FoundItem{}, fmt.Errorf("name, dateFound, location, phone and email are required: %w", ErrInvalidInput)
	}

	item.ID = uuid.New().String()
	item.OwnerUserID = ownerID
	item.Status = models.StatusActive
	item.ClaimedByEmail = ""
	item.CreatedAt = time.Now()
	if strings.TrimSpace(item.Category) == "" {
		item.Category = models.DefaultCategory
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO found_items (id, name, color, brand, unique_id, date_found, image_url, location, category, phone, email, owner_user_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return models.FoundItem{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(item.ID, item.Name, item.Color, item.Brand, item.UniqueID, item.DateFound,
		item.ImageURL, item.Location, item.Category, item.Phone, item.Email, item.OwnerUserID, item.Status, item.CreatedAt)
	if err != nil {
		return models.FoundItem{}, err
	}

	s.logEvent("item.found.reported", "info", "found item "+item.Name, &item.OwnerUserID)
	return item, nil
}

// ListFoundItems returns active found items, newest first, optionally filtered
// by category.
func (s *FoundItemService) ListFoundItems(category string) ([]models.FoundItem, error) {
	query := "SELECT " + foundItemColumns + " FROM found_items WHERE status = ?"
	args := []interface{}{models.StatusActive}
	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"
	return s.queryFoundItems(query, args...)
}

// ListFoundItemsByOwner returns every found item owned by ownerID regardless
// of status, newest first.
func (s *FoundItemService) ListFoundItemsByOwner(ownerID string) ([]models.FoundItem, error) {
	query := "SELECT " + foundItemColumns + " FROM found_items WHERE owner_user_id = ? ORDER BY created_at DESC"
	return s.queryFoundItems(query, ownerID)
}

// ResolveFoundItem marks the item claimed and records who claimed it.
// Resolving an already claimed item succeeds again and overwrites the
// recorded email.
func (s *FoundItemService) ResolveFoundItem(id, claimerEmail string) error {
	res, err := s.db.Exec("UPDATE found_items SET status = ?, claimed_by_email = ? WHERE id = ?",
		models.StatusClaimed, claimerEmail, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("found item %s: %w", id, ErrNotFound)
	}

	s.logEvent("item.found.resolved", "info", "found item "+id+" marked claimed", nil)
	return nil
}

// DeleteClaimedBefore removes claimed found items created before cutoff and
// returns how many were deleted.
func (s *FoundItemService) DeleteClaimedBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM found_items WHERE status = ? AND created_at < ?", models.StatusClaimed, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const foundItemColumns = "id, name, color, brand, unique_id, date_found, image_url, location, category, phone, email, owner_user_id, status, claimed_by_email, created_at"

func (s *FoundItemService) queryFoundItems(query string, args ...interface{}) ([]models.FoundItem, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.FoundItem{}
	for rows.Next() {
		var it models.FoundItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Color, &it.Brand, &it.UniqueID, &it.DateFound,
			&it.ImageURL, &it.Location, &it.Category, &it.Phone, &it.Email, &it.OwnerUserID, &it.Status,
			&it.ClaimedByEmail, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *FoundItemService) logEvent(eventType, level, message string, userID *string) {
	if s.events == nil {
		return
	}
	_ = s.events.CreateEvent(eventType, level, message, userID)
}
