package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe_backend/internal/apperr"
	"recipe_backend/internal/feature/ingredients/domain"
	"recipe_backend/internal/feature/ingredients/domain/entity"
)

// mockIngredientRepository is a mock implementation of the
// IngredientRepository interface.
type mockIngredientRepository struct {
	CreateFunc   func(ctx context.Context, ing *entity.Ingredient) error
	FindByIDFunc func(ctx context.Context, id string) (*entity.Ingredient, error)
	UpdateFunc   func(ctx context.Context, ing *entity.Ingredient) error
	DeleteFunc   func(ctx context.Context, id string) error
	ListFunc     func(ctx context.Context, q ListQuery) ([]entity.Ingredient, int64, error)
}

func (m *mockIngredientRepository) Create(ctx context.Context, ing *entity.Ingredient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ing)
	}
	return nil
}

func (m *mockIngredientRepository) FindByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrIngredientNotFound
}

func (m *mockIngredientRepository) Update(ctx context.Context, ing *entity.Ingredient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ing)
	}
	return nil
}

func (m *mockIngredientRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockIngredientRepository) List(ctx context.Context, q ListQuery) ([]entity.Ingredient, int64, error) {
	return m.ListFunc(ctx, q)
}

func TestListQuery_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListQuery
		want ListQuery
	}{
		{
			name: "empty query gets defaults",
			in:   ListQuery{},
			want: ListQuery{Page: 1, Limit: 10, Sort: "updatedAt", SortType: "dsc"},
		},
		{
			name: "negative page clamps to first",
			in:   ListQuery{Page: -3, Limit: 5},
			want: ListQuery{Page: 1, Limit: 5, Sort: "updatedAt", SortType: "dsc"},
		},
		{
			name: "oversized limit clamps to max",
			in:   ListQuery{Page: 2, Limit: 500},
			want: ListQuery{Page: 2, Limit: 100, Sort: "updatedAt", SortType: "dsc"},
		},
		{
			name: "explicit ascending order survives",
			in:   ListQuery{Page: 1, Limit: 10, Sort: "name", SortType: "asc"},
			want: ListQuery{Page: 1, Limit: 10, Sort: "name", SortType: "asc"},
		},
		{
			name: "unknown sort type falls back to descending",
			in:   ListQuery{Page: 1, Limit: 10, SortType: "sideways"},
			want: ListQuery{Page: 1, Limit: 10, Sort: "updatedAt", SortType: "dsc"},
		},
		{
			name: "search term passes through untouched",
			in:   ListQuery{Search: "tom"},
			want: ListQuery{Page: 1, Limit: 10, Search: "tom", Sort: "updatedAt", SortType: "dsc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestIngredientsUsecase_Create(t *testing.T) {
	t.Run("persists a new ingredient with a fresh ID", func(t *testing.T) {
		var stored *entity.Ingredient
		mockRepo := &mockIngredientRepository{
			CreateFunc: func(ctx context.Context, ing *entity.Ingredient) error {
				stored = ing
				return nil
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		ing, err := uc.Create(context.Background(), "Tomato", "Fresh red tomato", "Vegetable")

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEmpty(t, ing.ID)
		assert.Equal(t, "Tomato", stored.Name)
		assert.Equal(t, "Fresh red tomato", stored.Description)
		assert.Equal(t, "Vegetable", stored.Category)
	})

	t.Run("missing name is a validation failure", func(t *testing.T) {
		mockRepo := &mockIngredientRepository{
			CreateFunc: func(ctx context.Context, ing *entity.Ingredient) error {
				t.Fatal("the store must not be touched for an invalid ingredient")
				return nil
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		ing, err := uc.Create(context.Background(), "", "desc", "cat")

		assert.Nil(t, ing)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		assert.Equal(t, "Name is required", apperr.FieldsOf(err)["name"])
	})

	t.Run("store failure stays internal", func(t *testing.T) {
		mockRepo := &mockIngredientRepository{
			CreateFunc: func(ctx context.Context, ing *entity.Ingredient) error {
				return errors.New("database error")
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		_, err := uc.Create(context.Background(), "Tomato", "", "")

		assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	})
}

func TestIngredientsUsecase_Get(t *testing.T) {
	t.Run("returns the ingredient", func(t *testing.T) {
		expected := &entity.Ingredient{ID: "ing-1", Name: "Tomato"}
		mockRepo := &mockIngredientRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Ingredient, error) {
				assert.Equal(t, "ing-1", id)
				return expected, nil
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		ing, err := uc.Get(context.Background(), "ing-1")

		require.NoError(t, err)
		assert.Equal(t, expected, ing)
	})

	t.Run("unknown ingredient maps to NotFound", func(t *testing.T) {
		uc := NewIngredientsUsecase(&mockIngredientRepository{})

		ing, err := uc.Get(context.Background(), "missing-id")

		assert.Nil(t, ing)
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
		assert.Equal(t, "Ingredient not found", apperr.MessageOf(err))
	})
}

func TestIngredientsUsecase_List(t *testing.T) {
	t.Run("passes the normalized query to the store", func(t *testing.T) {
		mockRepo := &mockIngredientRepository{
			ListFunc: func(ctx context.Context, q ListQuery) ([]entity.Ingredient, int64, error) {
				assert.Equal(t, ListQuery{Page: 1, Limit: 10, Search: "tom", Sort: "updatedAt", SortType: "dsc"}, q)
				return []entity.Ingredient{{ID: "ing-1", Name: "Tomato"}}, 1, nil
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		items, total, q, err := uc.List(context.Background(), ListQuery{Search: "tom"})

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, 10, q.Limit)
	})

	t.Run("store failure stays internal", func(t *testing.T) {
		mockRepo := &mockIngredientRepository{
			ListFunc: func(ctx context.Context, q ListQuery) ([]entity.Ingredient, int64, error) {
				return nil, 0, errors.New("database error")
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		_, _, _, err := uc.List(context.Background(), ListQuery{})

		assert.Equal(t, apperr.Internal, apperr.KindOf(err))
	})
}

func TestIngredientsUsecase_Update(t *testing.T) {
	t.Run("replaces the fields of an existing ingredient", func(t *testing.T) {
		var stored *entity.Ingredient
		mockRepo := &mockIngredientRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Ingredient, error) {
				return &entity.Ingredient{ID: id, Name: "Tomato", Category: "Vegetable"}, nil
			},
			UpdateFunc: func(ctx context.Context, ing *entity.Ingredient) error {
				stored = ing
				return nil
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		ing, err := uc.Update(context.Background(), "ing-1", "Cherry Tomato", "Sweeter variety", "Vegetable")

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "ing-1", ing.ID)
		assert.Equal(t, "Cherry Tomato", stored.Name)
		assert.Equal(t, "Sweeter variety", stored.Description)
	})

	t.Run("missing ingredient is NotFound even with an invalid body", func(t *testing.T) {
		uc := NewIngredientsUsecase(&mockIngredientRepository{})

		ing, err := uc.Update(context.Background(), "missing-id", "", "", "")

		assert.Nil(t, ing)
		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	})

	t.Run("existing ingredient with an empty name is a validation failure", func(t *testing.T) {
		mockRepo := &mockIngredientRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Ingredient, error) {
				return &entity.Ingredient{ID: id, Name: "Tomato"}, nil
			},
			UpdateFunc: func(ctx context.Context, ing *entity.Ingredient) error {
				t.Fatal("the store must not be touched for an invalid update")
				return nil
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		_, err := uc.Update(context.Background(), "ing-1", "", "", "")

		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	})
}

func TestIngredientsUsecase_Delete(t *testing.T) {
	t.Run("removes the ingredient", func(t *testing.T) {
		deleted := false
		mockRepo := &mockIngredientRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				assert.Equal(t, "ing-1", id)
				deleted = true
				return nil
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		require.NoError(t, uc.Delete(context.Background(), "ing-1"))
		assert.True(t, deleted)
	})

	t.Run("unknown ingredient uses the delete-specific message", func(t *testing.T) {
		mockRepo := &mockIngredientRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				return domain.ErrIngredientNotFound
			},
		}

		uc := NewIngredientsUsecase(mockRepo)
		err := uc.Delete(context.Background(), "missing-id")

		assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
		assert.Equal(t, "Requested Ingredient not found", apperr.MessageOf(err))
	})
}
