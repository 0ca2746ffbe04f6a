// filepath: internal/repository/payment_info_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"payinfo/internal/logging"
	"payinfo/internal/models"

	"github.com/Masterminds/squirrel"
)

const paymentInfoTable = "payment_infos"

func paymentInfoCacheKey(referenceID string) string {
	return "payment_info_" + referenceID
}

func (r *Repository) expired(info *models.StoredPaymentInfo) bool {
	return info.ExpiresAt != nil && !r.Now().Before(*info.ExpiresAt)
}

// GetPaymentInfo retrieves a live payment info, using the cache for performance.
// Expired rows are treated as missing.
func (r *Repository) GetPaymentInfo(ctx context.Context, referenceID string) (*models.StoredPaymentInfo, error) {
	cacheKey := paymentInfoCacheKey(referenceID)
	if cached, found := r.Cache.Get(cacheKey); found {
		info := cached.(*models.StoredPaymentInfo)
		if r.expired(info) {
			r.Cache.Delete(cacheKey)
			return nil, ErrPaymentInfoNotFound
		}
		return info, nil
	}

	logging.Log.Debugf("GetPaymentInfo: CACHE MISS for '%s'. Querying DB.", referenceID)
	query, args, err := r.Builder.
		Select("reference_id", "document", "created_at", "expires_at").
		From(paymentInfoTable).
		Where(squirrel.Eq{"reference_id": referenceID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		info      models.StoredPaymentInfo
		document  string
		createdAt int64
		expiresAt sql.NullInt64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&info.ReferenceID, &document, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentInfoNotFound
		}
		return nil, err
	}
	info.Document = []byte(document)
	info.CreatedAt = time.Unix(createdAt, 0).UTC()
	if expiresAt.Valid {
		t := time.Unix(expiresAt.Int64, 0).UTC()
		info.ExpiresAt = &t
	}

	if r.expired(&info) {
		return nil, ErrPaymentInfoNotFound
	}

	r.Cache.SetDefault(cacheKey, &info)
	return &info, nil
}

// PutPaymentInfo inserts or replaces the record for info.ReferenceID.
func (r *Repository) PutPaymentInfo(ctx context.Context, info *models.StoredPaymentInfo) error {
	now := r.Now().Unix()
	var expiresAt interface{}
	if info.ExpiresAt != nil {
		expiresAt = info.ExpiresAt.Unix()
	}

	query, args, err := r.Builder.
		Insert(paymentInfoTable).
		Columns("reference_id", "document", "created_at", "updated_at", "expires_at").
		Values(info.ReferenceID, string(info.Document), now, now, expiresAt).
		Suffix("ON CONFLICT(reference_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	logging.Log.Debugf("PutPaymentInfo: Invalidating cache for '%s'", info.ReferenceID)
	r.Cache.Delete(paymentInfoCacheKey(info.ReferenceID))
	return nil
}

// InsertPaymentInfo stores info only if no live record has its reference id.
// An expired row that housekeeping has not purged yet is replaced.
func (r *Repository) InsertPaymentInfo(ctx context.Context, info *models.StoredPaymentInfo) error {
	now := r.Now().Unix()
	var expiresAt interface{}
	if info.ExpiresAt != nil {
		expiresAt = info.ExpiresAt.Unix()
	}

	query, args, err := r.Builder.
		Insert(paymentInfoTable).
		Columns("reference_id", "document", "created_at", "updated_at", "expires_at").
		Values(info.ReferenceID, string(info.Document), now, now, expiresAt).
		Suffix("ON CONFLICT(reference_id) DO UPDATE SET document = excluded.document, created_at = excluded.created_at, updated_at = excluded.updated_at, expires_at = excluded.expires_at " +
			"WHERE "+paymentInfoTable+".expires_at IS NOT NULL AND "+paymentInfoTable+".expires_at <= ?", now).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentInfoExists
	}

	r.Cache.Delete(paymentInfoCacheKey(info.ReferenceID))
	return nil
}

// DeletePaymentInfo removes a record. It returns ErrPaymentInfoNotFound if nothing was deleted.
func (r *Repository) DeletePaymentInfo(ctx context.Context, referenceID string) error {
	query, args, err := r.Builder.
		Delete(paymentInfoTable).
		Where(squirrel.Eq{"reference_id": referenceID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	r.Cache.Delete(paymentInfoCacheKey(referenceID))

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentInfoNotFound
	}
	return nil
}

// CountPaymentInfos returns the number of stored rows, expired ones included.
func (r *Repository) CountPaymentInfos(ctx context.Context) (int64, error) {
	query, args, err := r.Builder.Select("COUNT(*)").From(paymentInfoTable).ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteExpiredPaymentInfos purges every record whose expiry is at or before now.
func (r *Repository) DeleteExpiredPaymentInfos(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := r.Builder.
		Delete(paymentInfoTable).
		Where(squirrel.And{
			squirrel.NotEq{"expires_at": nil},
			squirrel.LtOrEq{"expires_at": now.Unix()},
		}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.Cache.Flush()
	}
	return n, nil
}
