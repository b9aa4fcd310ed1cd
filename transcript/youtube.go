package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ytbrief/ytbrief/errors"
)

const defaultWatchBaseURL = "https://www.youtube.com"

// userAgent mirrors a desktop browser; the watch page serves a reduced
// player response to unknown clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// YouTubeSource fetches platform captions: it loads the watch page,
// locates the caption track list in the embedded player response, and
// downloads the track's timedtext XML.
type YouTubeSource struct {
	client  *http.Client
	baseURL string
	lang    string
	logger  *logrus.Logger
}

type YouTubeOption func(*YouTubeSource)

// WithHTTPClient overrides the HTTP client, primarily for tests.
func WithHTTPClient(client *http.Client) YouTubeOption {
	return func(s *YouTubeSource) { s.client = client }
}

// WithBaseURL overrides the watch page host, primarily for tests.
func WithBaseURL(baseURL string) YouTubeOption {
	return func(s *YouTubeSource) { s.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithLanguage sets the preferred caption language code.
func WithLanguage(lang string) YouTubeOption {
	return func(s *YouTubeSource) { s.lang = lang }
}

func NewYouTubeSource(opts ...YouTubeOption) *YouTubeSource {
	s := &YouTubeSource{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultWatchBaseURL,
		lang:    "en",
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *YouTubeSource) Name() string { return "youtube_captions" }

func (s *YouTubeSource) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	const op = "YouTubeSource.Fetch"
	logger := s.logger.WithField("video_id", videoID)

	page, err := s.get(ctx, s.baseURL+"/watch?v="+videoID)
	if err != nil {
		return nil, errors.TranscriptSource(op, err, "Failed to load video page")
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		logger.WithError(err).Info("No caption tracks for video")
		return nil, errors.TranscriptUnavailable(op, err,
			"This video does not have available transcripts. Please try a different video or ensure closed captions are enabled.")
	}

	track := pickTrack(tracks, s.lang)
	logger.WithFields(logrus.Fields{
		"language": track.LanguageCode,
		"kind":     track.Kind,
	}).Debug("Fetching caption track")

	body, err := s.get(ctx, track.BaseURL)
	if err != nil {
		return nil, errors.TranscriptSource(op, err, "Failed to download captions")
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return nil, errors.TranscriptSource(op, err, "Failed to parse captions")
	}
	if len(segments) == 0 {
		return nil, errors.TranscriptUnavailable(op, nil, "Video captions are empty")
	}

	logger.WithField("segments", len(segments)).Info("Fetched transcript")
	return segments, nil
}

func (s *YouTubeSource) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "building request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", s.lang+",en;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "reading response body")
	}
	return body, nil
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// parseCaptionTracks extracts the captionTracks array from the player
// response embedded in the watch page. A page without the array means
// captions are disabled or the video is not playable.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	const marker = `"captionTracks":`

	idx := strings.Index(string(page), marker)
	if idx < 0 {
		if strings.Contains(string(page), `"playabilityStatus":`) &&
			!strings.Contains(string(page), `"status":"OK"`) {
			return nil, fmt.Errorf("video is not playable")
		}
		return nil, fmt.Errorf("transcript is disabled on this video")
	}

	dec := json.NewDecoder(strings.NewReader(string(page[idx+len(marker):])))
	var tracks []captionTrack
	if err := dec.Decode(&tracks); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding caption tracks")
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("caption track list is empty")
	}
	return tracks, nil
}

// pickTrack prefers a manual track in the requested language, then an
// auto-generated one, then the first track available.
func pickTrack(tracks []captionTrack, lang string) captionTrack {
	for _, t := range tracks {
		if t.LanguageCode == lang && t.Kind != "asr" {
			return t
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == lang {
			return t
		}
	}
	return tracks[0]
}

type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start    float64 `xml:"start,attr"`
		Duration float64 `xml:"dur,attr"`
		Body     string  `xml:",chardata"`
	} `xml:"text"`
}

// parseTimedText decodes the timedtext XML into ordered segments. The
// payload double-escapes entities, so text is unescaped once more after
// XML decoding.
func parseTimedText(body []byte) (Transcript, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding timedtext")
	}

	segments := make(Transcript, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := html.UnescapeString(t.Body)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    t.Start,
			Duration: t.Duration,
		})
	}
	return segments, nil
}
