package service

import (
	"context"
	"errors"
	"testing"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, name string, categoryID int) (*model.Product, error) {
	args := m.Called(ctx, name, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]model.ProductWithCategory, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductWithCategory), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id int, name string, categoryID int) error {
	args := m.Called(ctx, id, name, categoryID)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name           string
		productName    string
		categoryID     int
		categoryExists bool
		expectCreate   bool
		expectError    error
	}{
		{
			name:           "Success",
			productName:    "Laptop",
			categoryID:     1,
			categoryExists: true,
			expectCreate:   true,
		},
		{
			name:        "Empty name rejected before any repository call",
			productName: "",
			categoryID:  1,
			expectError: model.ErrProductNameRequired,
		},
		{
			name:           "Missing category rejected",
			productName:    "Laptop",
			categoryID:     99,
			categoryExists: false,
			expectError:    model.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			categoryRepo := new(MockCategoryRepository)

			if tt.productName != "" {
				categoryRepo.On("Exists", ctx, tt.categoryID).Return(tt.categoryExists, nil)
			}
			if tt.expectCreate {
				productRepo.On("Create", ctx, tt.productName, tt.categoryID).
					Return(&model.Product{ID: 1, Name: tt.productName, CategoryID: tt.categoryID}, nil)
			}

			svc := NewProductService(productRepo, categoryRepo, logger)
			product, err := svc.Create(ctx, tt.productName, tt.categoryID)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, product)
				productRepo.AssertNotCalled(t, "Create")
			} else {
				require.NoError(t, err)
				require.NotNil(t, product)
				assert.Equal(t, tt.productName, product.Name)
			}

			productRepo.AssertExpectations(t)
			categoryRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.ProductWithCategory{
		{ID: 2, Name: "Headphones", CategoryID: 1, CategoryName: "Electronics"},
		{ID: 1, Name: "Laptop", CategoryID: 1, CategoryName: "Electronics"},
	}

	tests := []struct {
		name           string
		page           int
		pageSize       int
		total          int
		expectedLimit  int
		expectedOffset int
		expectedPages  int
	}{
		{
			name:           "Defaults applied for zero values",
			page:           0,
			pageSize:       0,
			total:          2,
			expectedLimit:  10,
			expectedOffset: 0,
			expectedPages:  1,
		},
		{
			name:           "Second page offsets by page size",
			page:           2,
			pageSize:       10,
			total:          25,
			expectedLimit:  10,
			expectedOffset: 10,
			expectedPages:  3,
		},
		{
			name:           "Page size capped at 100",
			page:           1,
			pageSize:       500,
			total:          25,
			expectedLimit:  100,
			expectedOffset: 0,
			expectedPages:  1,
		},
		{
			name:           "Negative page falls back to 1",
			page:           -3,
			pageSize:       10,
			total:          25,
			expectedLimit:  10,
			expectedOffset: 0,
			expectedPages:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			categoryRepo := new(MockCategoryRepository)
			productRepo.On("Count", ctx).Return(tt.total, nil)
			productRepo.On("List", ctx, tt.expectedLimit, tt.expectedOffset).Return(testProducts, nil)

			svc := NewProductService(productRepo, categoryRepo, logger)
			page, err := svc.List(ctx, tt.page, tt.pageSize)

			require.NoError(t, err)
			assert.Equal(t, testProducts, page.Data)
			assert.Equal(t, tt.total, page.Pagination.Total)
			assert.Equal(t, tt.expectedPages, page.Pagination.TotalPages)
			assert.Equal(t, tt.expectedLimit, page.Pagination.PageSize)
			productRepo.AssertExpectations(t)
		})
	}

	t.Run("Empty result is an empty slice, not nil", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		productRepo.On("Count", ctx).Return(0, nil)
		productRepo.On("List", ctx, 10, 0).Return(nil, nil)

		svc := NewProductService(productRepo, categoryRepo, logger)
		page, err := svc.List(ctx, 1, 10)

		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Len(t, page.Data, 0)
		assert.Equal(t, 0, page.Pagination.TotalPages)
	})

	t.Run("Count error aborts listing", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		productRepo.On("Count", ctx).Return(0, errors.New("database error"))

		svc := NewProductService(productRepo, categoryRepo, logger)
		page, err := svc.List(ctx, 1, 10)

		require.Error(t, err)
		assert.Nil(t, page)
		productRepo.AssertNotCalled(t, "List")
	})
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("Exists", ctx, 2).Return(true, nil)
		productRepo.On("Update", ctx, 5, "Laptop Pro", 2).Return(nil)

		svc := NewProductService(productRepo, categoryRepo, logger)
		err := svc.Update(ctx, 5, "Laptop Pro", 2)

		require.NoError(t, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("Missing category rejected", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("Exists", ctx, 99).Return(false, nil)

		svc := NewProductService(productRepo, categoryRepo, logger)
		err := svc.Update(ctx, 5, "Laptop Pro", 99)

		assert.ErrorIs(t, err, model.ErrCategoryNotFound)
		productRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Empty name rejected", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)

		svc := NewProductService(productRepo, categoryRepo, logger)
		err := svc.Update(ctx, 5, " ", 2)

		assert.ErrorIs(t, err, model.ErrProductNameRequired)
		categoryRepo.AssertNotCalled(t, "Exists")
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success delegates to repository", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		productRepo.On("Delete", ctx, 3).Return(nil)

		svc := NewProductService(productRepo, categoryRepo, logger)
		err := svc.Delete(ctx, 3)

		require.NoError(t, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("Not found propagated untouched", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		productRepo.On("Delete", ctx, 42).Return(model.ErrProductNotFound)

		svc := NewProductService(productRepo, categoryRepo, logger)
		err := svc.Delete(ctx, 42)

		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Storage error wrapped", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		productRepo.On("Delete", ctx, 3).Return(errors.New("database error"))

		svc := NewProductService(productRepo, categoryRepo, logger)
		err := svc.Delete(ctx, 3)

		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrProductNotFound)
	})
}
