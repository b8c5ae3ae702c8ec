package orm_test

import (
	"testing"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanik/pkg/orm"
	"github.com/shashiranjanraj/vanik/pkg/testkit"
)

type widget struct {
	gorm.Model
	Name  string
	Color string
}

func seedWidgets(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		w := widget{Name: name, Color: "blue"}
		if err := orm.DB().Create(&w); err != nil {
			t.Fatalf("create widget: %v", err)
		}
	}
}

func TestQueryGetAndCount(t *testing.T) {
	testkit.OpenDB(t, &widget{})
	seedWidgets(t, "anchor", "bolt", "clamp")

	q := orm.DB().Model(&widget{}).Where("name <> ?", "bolt")

	total, err := q.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 widgets, got %d", total)
	}

	// The same chain must still be runnable after Count.
	var out []widget
	if err := q.Order("id").Get(&out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out) != 2 || out[0].Name != "anchor" || out[1].Name != "clamp" {
		t.Errorf("unexpected rows: %+v", out)
	}
}

func TestQueryFirstNotFound(t *testing.T) {
	testkit.OpenDB(t, &widget{})

	var w widget
	err := orm.DB().Model(&widget{}).Where("name = ?", "ghost").First(&w)
	if err == nil {
		t.Fatal("expected an error for a missing row")
	}
	if !orm.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestGetWithPaginationClampsPage(t *testing.T) {
	testkit.OpenDB(t, &widget{})
	seedWidgets(t, "anchor", "bolt", "clamp")

	var out []widget
	p, err := orm.DB().Model(&widget{}).Order("id").GetWithPagination(&out, 99, 2)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}

	if p.Page != 2 || p.Pages != 2 {
		t.Errorf("expected page 2 of 2, got page %d of %d", p.Page, p.Pages)
	}
	if len(out) != 1 || out[0].Name != "clamp" {
		t.Errorf("expected the single last-page row, got %+v", out)
	}
}

func TestTransactionRollsBack(t *testing.T) {
	testkit.OpenDB(t, &widget{})

	err := orm.Transaction(func(tx *orm.Query) error {
		if err := tx.Create(&widget{Name: "doomed"}); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	if err == nil {
		t.Fatal("expected the transaction error to surface")
	}

	total, err := orm.DB().Model(&widget{}).Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Errorf("expected rollback to discard the insert, found %d rows", total)
	}
}
