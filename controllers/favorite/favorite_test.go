package favoritecontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Listing{},
		&models.ListingImage{},
		&models.Favorite{},
	))
	return db
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func newRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1/favorites", asUser(userID))
	g.GET("", GetFavorites(db))
	g.POST("", AddFavorite(db))
	g.PUT("/:id", UpdateFavorite(db))
	g.DELETE("/:id", DeleteFavorite(db))
	g.DELETE("/listing/:listingId", UnfavoriteByListing(db))
	g.GET("/check/:listingId", CheckFavorite(db))
	return r
}

func seedListing(t *testing.T, db *gorm.DB, price int) models.Listing {
	t.Helper()
	listing := models.Listing{
		ID:          uuid.NewString(),
		SellerID:    "seller-1",
		Title:       "2018 Toyota Corolla",
		Make:        "Toyota",
		Model:       "Corolla",
		Year:        2018,
		Price:       price,
		Description: strings.Repeat("tidy example. ", 5),
		Status:      models.ListingStatusActive,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestAddFavoriteIdempotent(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 15000)
	r := newRouter(db, "buyer-1")

	w, env := doRequest(t, r, http.MethodPost, "/api/v1/favorites",
		AddFavoriteRequest{ListingID: listing.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	var first models.Favorite
	require.NoError(t, json.Unmarshal(env.Data, &first))

	// Favoriting again returns the same record instead of creating another.
	w, env = doRequest(t, r, http.MethodPost, "/api/v1/favorites",
		AddFavoriteRequest{ListingID: listing.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var second models.Favorite
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).
		Where("user_id = ? AND listing_id = ?", "buyer-1", listing.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddFavoriteAfterRivalInsert(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 15000)

	// Another request already won the insert for this (user, listing) pair.
	rival := models.Favorite{ID: uuid.NewString(), UserID: "buyer-1", ListingID: listing.ID}
	require.NoError(t, db.Create(&rival).Error)

	w, env := doRequest(t, newRouter(db, "buyer-1"), http.MethodPost, "/api/v1/favorites",
		AddFavoriteRequest{ListingID: listing.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Favorite
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, rival.ID, got.ID)
}

func TestAddFavoriteUnknownListing(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, "buyer-1")

	w, env := doRequest(t, r, http.MethodPost, "/api/v1/favorites",
		AddFavoriteRequest{ListingID: uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetFavoritesScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	mine := seedListing(t, db, 15000)
	theirs := seedListing(t, db, 22000)

	require.NoError(t, db.Create(&models.Favorite{
		ID: uuid.NewString(), UserID: "buyer-1", ListingID: mine.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Favorite{
		ID: uuid.NewString(), UserID: "buyer-2", ListingID: theirs.ID,
	}).Error)

	_, env := doRequest(t, newRouter(db, "buyer-1"), http.MethodGet, "/api/v1/favorites", nil)
	var favorites []models.Favorite
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, mine.ID, favorites[0].ListingID)
	require.NotNil(t, favorites[0].Listing)
	assert.Equal(t, 15000, favorites[0].Listing.Price)
}

func TestUpdateFavoriteDefaultsTargetPrice(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 20000)
	favorite := models.Favorite{ID: uuid.NewString(), UserID: "buyer-1", ListingID: listing.ID}
	require.NoError(t, db.Create(&favorite).Error)

	enabled := true
	_, env := doRequest(t, newRouter(db, "buyer-1"), http.MethodPut,
		"/api/v1/favorites/"+favorite.ID, UpdateFavoriteRequest{PriceAlertEnabled: &enabled})

	var updated models.Favorite
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.True(t, updated.PriceAlertEnabled)
	require.NotNil(t, updated.TargetPrice)
	assert.Equal(t, 18000, *updated.TargetPrice) // 90% of the asking price
}

func TestUpdateFavoriteKeepsExplicitTarget(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 20000)
	favorite := models.Favorite{ID: uuid.NewString(), UserID: "buyer-1", ListingID: listing.ID}
	require.NoError(t, db.Create(&favorite).Error)

	enabled := true
	target := 17500
	_, env := doRequest(t, newRouter(db, "buyer-1"), http.MethodPut,
		"/api/v1/favorites/"+favorite.ID,
		UpdateFavoriteRequest{PriceAlertEnabled: &enabled, TargetPrice: &target})

	var updated models.Favorite
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.NotNil(t, updated.TargetPrice)
	assert.Equal(t, 17500, *updated.TargetPrice)
}

func TestUpdateFavoriteNotOwned(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 20000)
	favorite := models.Favorite{ID: uuid.NewString(), UserID: "buyer-1", ListingID: listing.ID}
	require.NoError(t, db.Create(&favorite).Error)

	enabled := true
	w, env := doRequest(t, newRouter(db, "buyer-2"), http.MethodPut,
		"/api/v1/favorites/"+favorite.ID, UpdateFavoriteRequest{PriceAlertEnabled: &enabled})
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestDeleteFavorite(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 20000)
	favorite := models.Favorite{ID: uuid.NewString(), UserID: "buyer-1", ListingID: listing.ID}
	require.NoError(t, db.Create(&favorite).Error)

	r := newRouter(db, "buyer-1")
	w, _ := doRequest(t, r, http.MethodDelete, "/api/v1/favorites/"+favorite.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Deleting by ID a second time is a 404; the record is gone.
	w, env := doRequest(t, r, http.MethodDelete, "/api/v1/favorites/"+favorite.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestUnfavoriteByListingIdempotent(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 20000)
	require.NoError(t, db.Create(&models.Favorite{
		ID: uuid.NewString(), UserID: "buyer-1", ListingID: listing.ID,
	}).Error)

	r := newRouter(db, "buyer-1")
	w, _ := doRequest(t, r, http.MethodDelete, "/api/v1/favorites/listing/"+listing.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The toggle is idempotent: unfavoriting again still succeeds.
	w, _ = doRequest(t, r, http.MethodDelete, "/api/v1/favorites/listing/"+listing.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCheckFavorite(t *testing.T) {
	db := newTestDB(t)
	listing := seedListing(t, db, 20000)
	require.NoError(t, db.Create(&models.Favorite{
		ID: uuid.NewString(), UserID: "buyer-1", ListingID: listing.ID,
	}).Error)

	type checkBody struct {
		IsFavorited bool `json:"isFavorited"`
	}

	_, env := doRequest(t, newRouter(db, "buyer-1"), http.MethodGet,
		"/api/v1/favorites/check/"+listing.ID, nil)
	var body checkBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.True(t, body.IsFavorited)

	// Anonymous callers always read false.
	_, env = doRequest(t, newRouter(db, ""), http.MethodGet,
		"/api/v1/favorites/check/"+listing.ID, nil)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.False(t, body.IsFavorited)
}
