package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "round").
		From("fixtures").
		Where(Eq("season_id", "premier-2026"), In("status", []any{"PLAYED"}), IsNull("deleted_at")).
		OrderBy("round", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT id, round FROM fixtures WHERE season_id = $1 AND status IN ($2) AND deleted_at IS NULL ORDER BY round, id LIMIT 10"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if !reflect.DeepEqual(args, []any{"premier-2026", "PLAYED"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("teams").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM teams WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %v", query, args)
	}
}

func TestInsertModels(t *testing.T) {
	t.Parallel()

	type row struct {
		ID    string `db:"id"`
		Round int    `db:"round"`
		skip  string
		Note  string `db:"-"`
	}

	query, args, err := InsertModels("fixtures", []row{{ID: "a", Round: 1}, {ID: "b", Round: 2}}, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	want := "INSERT INTO fixtures (id, round) VALUES ($1, $2), ($3, $4) ON CONFLICT (id) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if !reflect.DeepEqual(args, []any{"a", 1, "b", 2}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("fixtures").
		Set("status", "PLAYED").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "f1"), Expr("status <> ?", "CANCELLED")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	want := "UPDATE fixtures SET status = $1, updated_at = NOW() WHERE id = $2 AND status <> $3"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if !reflect.DeepEqual(args, []any{"PLAYED", "f1", "CANCELLED"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("fixtures").Where(Eq("season_id", "s1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM fixtures WHERE season_id = $1" || !reflect.DeepEqual(args, []any{"s1"}) {
		t.Fatalf("unexpected query %q args %v", query, args)
	}

	if _, _, err := DeleteFrom("fixtures").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}
