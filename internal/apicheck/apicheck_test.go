package apicheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"github.com/tunelab/songbook/internal/adapters/http/api"
	repository "github.com/tunelab/songbook/internal/adapters/repository"
	"github.com/tunelab/songbook/internal/domain/index"
	"github.com/tunelab/songbook/internal/domain/model"
	"github.com/tunelab/songbook/internal/domain/paginate"
	"github.com/tunelab/songbook/internal/domain/types"
	"github.com/tunelab/songbook/pkg/logger"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
	log.SetOutput(io.Discard)
}

// checkCatalog backs the probe target with real pagination and folding.
type checkCatalog struct {
	songs []model.Song
}

func (c *checkCatalog) AllSongs(_ context.Context) []model.Song {
	return c.songs
}

func (c *checkCatalog) PageSongs(_ context.Context, page, size int) types.Page {
	return paginate.Page(c.songs, page, size)
}

func (c *checkCatalog) SongByTitle(_ context.Context, title string) (model.Song, error) {
	key := index.Key(strings.TrimSpace(title))
	for _, song := range c.songs {
		t, ok := song.Title()
		if ok && index.Key(t) == key {
			return song, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (c *checkCatalog) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"started": true,
		"rows":    len(c.songs),
	}
}

// sampleCatalog builds n titled songs plus one untitled row.
func sampleCatalog(n int) []model.Song {
	songs := make([]model.Song, 0, n+1)
	for i := 0; i < n; i++ {
		songs = append(songs, model.Song{
			"title":  fmt.Sprintf("Song %02d", i),
			"artist": fmt.Sprintf("Artist %d", i%4),
			"year":   1990 + i,
		})
	}
	songs = append(songs, model.Song{"title": nil, "artist": "Unknown"})
	return songs
}

func newCheckServer(catalog *checkCatalog) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(catalog, catalog).Register(context.Background(), mux)
	return httptest.NewServer(api.RequestIDMiddleware(mux))
}

func checkConfig(baseURL string) *Config {
	return &Config{
		BaseURL: baseURL,
		Page:    2,
		Size:    5,
		Workers: 4,
		Timeout: 5 * time.Second,
	}
}

func TestRun(t *testing.T) {
	convey.Convey("Given a healthy service instance", t, func() {
		catalog := &checkCatalog{songs: sampleCatalog(12)}
		srv := newCheckServer(catalog)
		defer srv.Close()

		convey.Convey("When running the full check", func() {
			err := Run(context.Background(), checkConfig(srv.URL))

			convey.Convey("Then it should pass", func() {
				convey.So(err, convey.ShouldBeNil)
			})
		})
	})

	convey.Convey("Given an empty catalog", t, func() {
		catalog := &checkCatalog{songs: []model.Song{}}
		srv := newCheckServer(catalog)
		defer srv.Close()

		convey.Convey("When running the full check", func() {
			err := Run(context.Background(), checkConfig(srv.URL))

			convey.Convey("Then it should pass without lookups", func() {
				convey.So(err, convey.ShouldBeNil)
			})
		})
	})

	convey.Convey("Given an unreachable instance", t, func() {
		convey.Convey("When running the full check", func() {
			config := checkConfig("http://127.0.0.1:1")
			config.Timeout = 500 * time.Millisecond
			err := Run(context.Background(), config)

			convey.Convey("Then the health check should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "service health check failed")
			})
		})
	})
}

func TestRunVerificationFailure(t *testing.T) {
	convey.Convey("Given an instance with a broken title endpoint", t, func() {
		catalog := &checkCatalog{songs: sampleCatalog(8)}
		mux := http.NewServeMux()
		api.NewServer(catalog, catalog).Register(context.Background(), mux)

		broken := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/songs/title" {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				_, _ = w.Write([]byte("{}"))
				return
			}
			mux.ServeHTTP(w, r)
		})
		srv := httptest.NewServer(api.RequestIDMiddleware(broken))
		defer srv.Close()

		convey.Convey("When running the full check", func() {
			err := Run(context.Background(), checkConfig(srv.URL))

			convey.Convey("Then it should report verification failure", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, ErrVerificationFailed), convey.ShouldBeTrue)
			})
		})
	})
}

func TestCheckPageInvariants(t *testing.T) {
	convey.Convey("Given a full listing", t, func() {
		songs := make([]Song, 10)
		for i := range songs {
			songs[i] = Song{"title": fmt.Sprintf("Song %02d", i)}
		}

		convey.Convey("When checking a consistent page", func() {
			page := PageResponse{Page: 2, Size: 4, Total: 10, TotalPages: 3, Songs: songs[4:8]}
			convey.So(checkPageInvariants(page, songs), convey.ShouldBeNil)
		})

		convey.Convey("When checking the short last page", func() {
			page := PageResponse{Page: 3, Size: 4, Total: 10, TotalPages: 3, Songs: songs[8:10]}
			convey.So(checkPageInvariants(page, songs), convey.ShouldBeNil)
		})

		convey.Convey("When the total is wrong", func() {
			page := PageResponse{Page: 1, Size: 4, Total: 9, TotalPages: 3, Songs: songs[0:4]}
			err := checkPageInvariants(page, songs)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "total")
		})

		convey.Convey("When the page count is wrong", func() {
			page := PageResponse{Page: 1, Size: 4, Total: 10, TotalPages: 5, Songs: songs[0:4]}
			err := checkPageInvariants(page, songs)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "total_pages")
		})

		convey.Convey("When the window holds the wrong songs", func() {
			page := PageResponse{Page: 2, Size: 4, Total: 10, TotalPages: 3, Songs: songs[0:4]}
			err := checkPageInvariants(page, songs)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "differs")
		})

		convey.Convey("When the page is out of range", func() {
			page := PageResponse{Page: 7, Size: 4, Total: 10, TotalPages: 3, Songs: []Song{}}
			err := checkPageInvariants(page, songs)
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "out of range")
		})
	})

	convey.Convey("Given an empty listing", t, func() {
		convey.Convey("When checking an empty page", func() {
			page := PageResponse{Page: 3, Size: 10, Total: 0, TotalPages: 0, Songs: []Song{}}
			convey.So(checkPageInvariants(page, nil), convey.ShouldBeNil)
		})
	})
}

func TestCaseVariant(t *testing.T) {
	convey.Convey("Given a mixed-case title", t, func() {
		title := "Bohemian Rhapsody"

		convey.Convey("When generating the variant cycle", func() {
			convey.So(caseVariant(title, 0), convey.ShouldEqual, "Bohemian Rhapsody")
			convey.So(caseVariant(title, 1), convey.ShouldEqual, "BOHEMIAN RHAPSODY")
			convey.So(caseVariant(title, 2), convey.ShouldEqual, "bohemian rhapsody")
			convey.So(caseVariant(title, 3), convey.ShouldEqual, "  Bohemian Rhapsody  ")
			convey.So(caseVariant(title, 4), convey.ShouldEqual, "Bohemian Rhapsody")
		})
	})
}

func TestCollectTitles(t *testing.T) {
	convey.Convey("Given a listing with unusable titles", t, func() {
		songs := []Song{
			{"title": "Creep"},
			{"title": nil},
			{"artist": "Instrumental"},
			{"title": "   "},
			{"title": 42},
			{"title": "Yellow"},
		}

		convey.Convey("When collecting titles", func() {
			titles := collectTitles(songs)

			convey.Convey("Then only usable titles survive", func() {
				convey.So(titles, convey.ShouldResemble, []string{"Creep", "Yellow"})
			})
		})
	})
}

func TestStatsFailures(t *testing.T) {
	convey.Convey("Given check statistics", t, func() {
		convey.Convey("When no checks failed", func() {
			stats := &Stats{PagesFetched: 6, LookupsSucceeded: 10, ContractChecks: 3}
			convey.So(stats.Failures(), convey.ShouldEqual, 0)
		})

		convey.Convey("When checks failed across steps", func() {
			stats := &Stats{PageChecksFailed: 1, LookupsFailed: 2, ContractFailures: 3}
			convey.So(stats.Failures(), convey.ShouldEqual, 6)
		})
	})
}

func TestSetupLogging(t *testing.T) {
	convey.Convey("Given a log file path", t, func() {
		convey.Convey("When the path is writable", func() {
			logFile := filepath.Join(t.TempDir(), "check.log")
			err := SetupLogging(logFile)

			convey.Convey("Then logging should be configured", func() {
				convey.So(err, convey.ShouldBeNil)

				_, statErr := os.Stat(logFile)
				convey.So(statErr, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the directory does not exist", func() {
			logFile := filepath.Join(t.TempDir(), "missing", "check.log")
			err := SetupLogging(logFile)

			convey.Convey("Then it should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "failed to create log file")
			})
		})
	})
}
