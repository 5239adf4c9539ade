package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tunelab/songbook/internal/domain/model"
	"github.com/tunelab/songbook/internal/domain/normalize"
	"github.com/tunelab/songbook/pkg/logger"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

func dataset(t *testing.T, doc string) model.Dataset {
	t.Helper()
	var ds model.Dataset
	if err := json.Unmarshal([]byte(doc), &ds); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return ds
}

func TestMemStoreBuild(t *testing.T) {
	Convey("Given a clean dataset", t, func() {
		ctx := context.Background()
		ds := dataset(t, `{
			"title":  {"0": "3AM", "1": "Creep", "2": "Yellow"},
			"artist": {"0": "Matchbox Twenty", "1": "Radiohead", "2": "Coldplay"}
		}`)

		Convey("When building the store", func() {
			store, err := NewMemStore(ctx, ds)

			Convey("Then it holds every row in order", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 3)

				all := store.All(ctx)
				So(len(all), ShouldEqual, 3)
				So(all[0]["title"], ShouldEqual, "3AM")
				So(all[2]["title"], ShouldEqual, "Yellow")
			})

			Convey("And All returns a fresh slice each call", func() {
				So(err, ShouldBeNil)
				first := store.All(ctx)
				first[0] = nil
				So(store.All(ctx)[0], ShouldNotBeNil)
			})

			Convey("And stats reflect a clean build", func() {
				So(err, ShouldBeNil)
				stats := store.Stats(ctx)
				So(stats.Rows, ShouldEqual, 3)
				So(stats.IndexedTitles, ShouldEqual, 3)
				So(stats.DuplicateTitles, ShouldEqual, 0)
				So(stats.UntitledRows, ShouldEqual, 0)
			})
		})
	})
}

func TestMemStoreByTitle(t *testing.T) {
	Convey("Given a built store", t, func() {
		ctx := context.Background()
		ds := dataset(t, `{
			"title":  {"0": "3AM", "1": "Straße"},
			"artist": {"0": "Matchbox Twenty", "1": "Rammstein"}
		}`)
		store, err := NewMemStore(ctx, ds)
		So(err, ShouldBeNil)

		Convey("When looking up case variants", func() {
			for _, title := range []string{"3AM", "3am", "3Am"} {
				song, err := store.ByTitle(ctx, title)
				So(err, ShouldBeNil)
				So(song["artist"], ShouldEqual, "Matchbox Twenty")
			}
		})

		Convey("When looking up with full case folding", func() {
			song, err := store.ByTitle(ctx, "STRASSE")

			Convey("Then the folded forms match", func() {
				So(err, ShouldBeNil)
				So(song["artist"], ShouldEqual, "Rammstein")
			})
		})

		Convey("When looking up an unknown title", func() {
			song, err := store.ByTitle(ctx, "Karma Police")

			Convey("Then it reports ErrNotFound", func() {
				So(song, ShouldBeNil)
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestMemStoreDataQuality(t *testing.T) {
	Convey("Given a dataset with duplicates and untitled rows", t, func() {
		ctx := context.Background()
		ds := dataset(t, `{
			"title":  {"0": "Hold On", "1": "hold on", "2": "", "3": "Alive", "5": "Gap Row"},
			"artist": {"0": "Wilson Phillips", "1": "Alabama Shakes", "2": "Nobody", "3": "Pearl Jam", "4": "Missing Title", "5": "Unreachable"}
		}`)

		Convey("When building the store", func() {
			store, err := NewMemStore(ctx, ds)

			Convey("Then all rows survive normalization", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 5)
			})

			Convey("And the first duplicate wins", func() {
				So(err, ShouldBeNil)
				song, err := store.ByTitle(ctx, "HOLD ON")
				So(err, ShouldBeNil)
				So(song["artist"], ShouldEqual, "Wilson Phillips")
			})

			Convey("And the stats count the drops", func() {
				So(err, ShouldBeNil)
				stats := store.Stats(ctx)
				So(stats.Rows, ShouldEqual, 5)
				So(stats.IndexedTitles, ShouldEqual, 2)
				So(stats.DuplicateTitles, ShouldEqual, 1)
				So(stats.UntitledRows, ShouldEqual, 2)
			})
		})
	})
}

func TestMemStoreEmptyDataset(t *testing.T) {
	Convey("Given an empty dataset document", t, func() {
		ctx := context.Background()
		ds := dataset(t, `{}`)

		Convey("When building the store", func() {
			store, err := NewMemStore(ctx, ds)

			Convey("Then the build fails with the normalization error", func() {
				So(store, ShouldBeNil)
				So(errors.Is(err, normalize.ErrNoAttributes), ShouldBeTrue)
			})
		})
	})

	Convey("Given a dataset with attributes but no rows", t, func() {
		ctx := context.Background()
		ds := dataset(t, `{"title": {}, "artist": {}}`)

		Convey("When building the store", func() {
			store, err := NewMemStore(ctx, ds)

			Convey("Then the store is valid and empty", func() {
				So(err, ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 0)
				So(store.All(ctx), ShouldBeEmpty)

				_, err := store.ByTitle(ctx, "anything")
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})
		})
	})
}
