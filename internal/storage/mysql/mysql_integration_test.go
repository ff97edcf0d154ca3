//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"smart_travel/internal/catalog"
	"smart_travel/internal/domain"
	mysqlrepo "smart_travel/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=travel",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/travel?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepo_MySQL_SeedAndOverlay(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// idempotent
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	for _, r := range catalog.Builtin().Regions() {
		if err := repo.UpsertRegion(ctx, r.Key, r.Places); err != nil {
			t.Fatalf("UpsertRegion %s: %v", r.Key, err)
		}
	}

	bhopal := []domain.Place{
		{Name: "Upper Lake", Rating: "4.6", Description: "Bhoj Tal.", Category: domain.Scenic},
		{Name: "Taj-ul-Masajid", Rating: "4.7", Description: "One of the largest mosques in India.", Category: domain.Spiritual},
		{Name: "Van Vihar", Rating: "4.4", Description: "National park on the lake shore.", Category: domain.Nature},
	}
	if err := repo.UpsertRegion(ctx, " Bhopal ", bhopal); err != nil {
		t.Fatalf("UpsertRegion bhopal: %v", err)
	}
	// shrinking a region drops its old tail
	if err := repo.UpsertRegion(ctx, "goa", catalog.Builtin().Lookup("goa")[:3]); err != nil {
		t.Fatalf("UpsertRegion goa: %v", err)
	}

	regions, err := repo.LoadRegions(ctx)
	if err != nil {
		t.Fatalf("LoadRegions: %v", err)
	}
	if len(regions) != len(catalog.Builtin().Regions())+1 {
		t.Fatalf("unexpected region count %d", len(regions))
	}
	for i := 1; i < len(regions); i++ {
		if regions[i-1].Key >= regions[i].Key {
			t.Fatalf("regions not ordered: %s before %s", regions[i-1].Key, regions[i].Key)
		}
	}

	cat := catalog.Builtin().Overlay(regions)
	got := cat.Lookup("Bhopal")
	if len(got) != 3 || got[1].Name != "Taj-ul-Masajid" || got[1].Category != domain.Spiritual {
		t.Fatalf("unexpected bhopal: %+v", got)
	}
	if n := len(cat.Lookup("Goa")); n != 3 {
		t.Fatalf("expected 3 goa places after shrink, got %d", n)
	}
	if cat.Lookup("Jaipur")[0].Name != "Amber Fort" {
		t.Fatalf("seeded order lost")
	}
}
