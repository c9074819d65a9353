package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/types"
	"backoffice/internal/domain/catalogs"
)

func TestToProduct_Minimal(t *testing.T) {
	p := toProduct(&productWire{catalogWire: catalogWire{ID: "p1"}})

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, "", p.SKU)
	assert.True(t, p.IsActive)
	assert.Nil(t, p.CategoryID)
	assert.Nil(t, p.Price)
	assert.Nil(t, p.CreatedAt)
}

func TestCatalogRepository_FindProducts(t *testing.T) {
	var query string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		query = r.URL.RawQuery
		_, _ = io.WriteString(w, `{"data":[{
			"id":"p1","code":"P-001","name":"Widget","isActive":false,
			"category":{"id":"c1","name":"Tools"},
			"price":"12.50","unit":"pcs"
		}],"pagination":{"page":1,"limit":20,"total":1,"totalPages":1}}`)
	})

	category := "c1"
	res, err := NewCatalogRepository(c).FindProducts(context.Background(), catalogs.ProductFilter{CategoryID: &category})
	require.NoError(t, err)
	assert.Equal(t, "categoryId=c1", query)

	require.Len(t, res.Items, 1)
	p := res.Items[0]
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "P-001", p.SKU)
	assert.False(t, p.IsActive)
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, "c1", *p.CategoryID)
	assert.Equal(t, "Tools", p.CategoryName)
	require.NotNil(t, p.Price)
	assert.True(t, types.MustMoney("12.5").Equal(*p.Price))
	assert.Equal(t, int64(1), res.Pagination.Total)
}

func TestCatalogRepository_FindWarehouseByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/warehouses/w404" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"code":"WAREHOUSE_NOT_FOUND","message":"not found"}`)
			return
		}
		_, _ = io.WriteString(w, `{"id":"w1","name":"Main","isDefault":true,"address":"Dock 4"}`)
	})
	repo := NewCatalogRepository(c)

	wh, err := repo.FindWarehouseByID(context.Background(), "w1")
	require.NoError(t, err)
	require.NotNil(t, wh)
	assert.Equal(t, "Main", wh.Name)
	assert.True(t, wh.IsDefault)
	require.NotNil(t, wh.Address)
	assert.Equal(t, "Dock 4", *wh.Address)

	missing, err := repo.FindWarehouseByID(context.Background(), "w404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogRepository_FindCategoriesBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"c1","name":"Tools"},{"id":"c2","name":"Drills","parent":{"id":"c1"},"productCount":7}]`)
	})

	res, err := NewCatalogRepository(c).FindCategories(context.Background(), catalogs.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Nil(t, res.Items[0].ParentID)
	require.NotNil(t, res.Items[1].ParentID)
	assert.Equal(t, "c1", *res.Items[1].ParentID)
	assert.Equal(t, 7, res.Items[1].ProductCount)
}
