package quran

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/storage"
)

// fetchConcurrency caps parallel recitation downloads per batch.
const fetchConcurrency = 4

// Mirror serves recitation audio from our own storage instead of the
// upstream CDN. Rewriting is best-effort: ayahs not mirrored yet keep
// their CDN URL and are fetched in the background, so the second request
// for a surah is served locally.
type Mirror struct {
	store      storage.Storage
	httpClient *http.Client
}

func NewMirror(store storage.Storage) *Mirror {
	return &Mirror{
		store:      store,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func audioKey(ayahNumber int) string {
	return fmt.Sprintf("%d.mp3", ayahNumber)
}

// Rewrite swaps mirrored ayah URLs in place and kicks off a background
// fetch for the rest. A nil Mirror leaves the surah untouched.
func (m *Mirror) Rewrite(s *model.FullSurah) {
	if m == nil {
		return
	}

	var missing []model.Ayah
	for i, ayah := range s.Ayahs {
		key := audioKey(ayah.Number)
		if url, ok := m.store.Exists(key); ok {
			s.Ayahs[i].Audio = url
		} else {
			missing = append(missing, ayah)
		}
	}

	if len(missing) > 0 {
		go func() {
			if err := m.Fetch(context.Background(), missing); err != nil {
				log.Warn().Err(err).Int("surah", s.Number).Msg("audio mirror batch incomplete")
			}
		}()
	}
}

// Fetch downloads the given ayahs from the CDN and stores them under the
// audio prefix. Failures are per-ayah; the first error is reported after
// the whole batch has been attempted.
func (m *Mirror) Fetch(ctx context.Context, ayahs []model.Ayah) error {
	g := &errgroup.Group{}
	g.SetLimit(fetchConcurrency)
	for _, ayah := range ayahs {
		ayah := ayah
		g.Go(func() error {
			return m.fetchOne(ctx, ayah)
		})
	}
	return g.Wait()
}

func (m *Mirror) fetchOne(ctx context.Context, ayah model.Ayah) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ayah.Audio, nil)
	if err != nil {
		return err
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch ayah %d audio: %w", ayah.Number, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch ayah %d audio: status %d", ayah.Number, resp.StatusCode)
	}

	if _, err := m.store.Save(audioKey(ayah.Number), resp.Body); err != nil {
		return fmt.Errorf("store ayah %d audio: %w", ayah.Number, err)
	}
	return nil
}
