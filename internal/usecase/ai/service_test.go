package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-summarizer/internal/summarizer"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

const roadmapNotes = "Goal is to finalize the roadmap.\nScope is limited to Q1.\nDecision: we will ship feature X in Q1.\nAction: Minsu will prepare the spec by 3/10."

const remoteJSON = "```json\n" + `{"title":"Roadmap sync","topics":[{"title":"Roadmap","bullets":["Q1 scope agreed"],"decisions":["Ship X in Q1"]}],"action_items":[{"owner":"Minsu","task":"Prepare the spec","due":"3/10"}],"overall_summary":"Roadmap finalized.","decisions":["Ship X in Q1"]}` + "\n```"

type fakeChat struct {
	calls int32
	reply string
	err   error
	delay time.Duration
}

func (f *fakeChat) Name() string { return "fake" }

func (f *fakeChat) GenerateSummary(ctx context.Context, _ string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(context.Context, []byte, string) (string, error) {
	return f.text, f.err
}

type recordingArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (r *recordingArchive) UploadBytes(_ context.Context, name string, data []byte, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.objects == nil {
		r.objects = make(map[string][]byte)
	}
	r.objects[name] = data
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Summarizer:    config.SummarizerConfig{Provider: "fake", Timeout: time.Second, MaxInputChars: summarizer.DefaultBudget},
		Transcription: config.TranscriptionConfig{Timeout: time.Second, MaxConcurrent: 1},
		Redis:         config.RedisConfig{CacheTTL: time.Minute},
	}
}

func newTestService(t *testing.T, chat pkgai.ChatClient, tr pkgai.Transcriber, store cache.Store, archive Archiver) Service {
	t.Helper()
	return NewAIService(testConfig(), nil, chat, tr, store, archive, zap.NewNop())
}

func appCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestSummarizeRequiresInput(t *testing.T) {
	svc := newTestService(t, nil, nil, nil, nil)
	_, err := svc.Summarize(context.Background(), SummarizeInput{Notes: "   \n"})
	assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appCode(t, err))
}

func TestSummarizeLocalWithoutProvider(t *testing.T) {
	svc := newTestService(t, nil, nil, nil, nil)
	out, err := svc.Summarize(context.Background(), SummarizeInput{Notes: roadmapNotes})
	require.NoError(t, err)

	assert.Equal(t, SourceLocal, out.Source)
	assert.Equal(t, string(summarizer.ModeSection), out.Mode)
	assert.Empty(t, out.SummaryError)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "en", out.Language)
	require.Len(t, out.Summary.ActionItems, 1)
	assert.Equal(t, "Minsu", out.Summary.ActionItems[0].Owner)
	assert.Contains(t, out.Text, "Confirmed Decisions")
	assert.Contains(t, out.Text, "Minsu | ")
}

func TestSummarizeRemoteSuccess(t *testing.T) {
	chat := &fakeChat{reply: remoteJSON}
	before := testutil.ToFloat64(SummariesTotal.WithLabelValues("fake", ModeRemote))

	svc := newTestService(t, chat, nil, nil, nil)
	out, err := svc.Summarize(context.Background(), SummarizeInput{Notes: roadmapNotes})
	require.NoError(t, err)

	assert.Equal(t, "fake", out.Source)
	assert.Equal(t, ModeRemote, out.Mode)
	assert.Equal(t, "Roadmap sync", out.Summary.Title)
	assert.Equal(t, []string{"Ship X in Q1"}, out.Summary.Decisions)
	assert.True(t, strings.HasPrefix(out.Text, "Roadmap sync\n"))
	assert.Equal(t, before+1, testutil.ToFloat64(SummariesTotal.WithLabelValues("fake", ModeRemote)))
}

func TestSummarizeLocalOnlySkipsRemote(t *testing.T) {
	chat := &fakeChat{reply: remoteJSON}
	svc := newTestService(t, chat, nil, nil, nil)
	out, err := svc.Summarize(context.Background(), SummarizeInput{Notes: roadmapNotes, LocalOnly: true})
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, out.Source)
	assert.Equal(t, int32(0), atomic.LoadInt32(&chat.calls))
}

func TestSummarizeRemoteFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		chat *fakeChat
		want apperrors.ErrorCode
	}{
		{name: "missing key", chat: &fakeChat{err: pkgai.ErrAPIKeyMissing}, want: apperrors.ErrorCode_AI_API_KEY_MISSING},
		{name: "auth", chat: &fakeChat{err: &pkgai.APIError{Provider: "fake", StatusCode: 401}}, want: apperrors.ErrorCode_AI_AUTH_FAILED},
		{name: "quota", chat: &fakeChat{err: &pkgai.APIError{Provider: "fake", StatusCode: 429}}, want: apperrors.ErrorCode_AI_QUOTA_EXCEEDED},
		{name: "unavailable", chat: &fakeChat{err: &pkgai.APIError{Provider: "fake", StatusCode: 503}}, want: apperrors.ErrorCode_AI_SERVICE_UNAVAILABLE},
		{name: "bad request", chat: &fakeChat{err: &pkgai.APIError{Provider: "fake", StatusCode: 400}}, want: apperrors.ErrorCode_AI_SUMMARY_FAILED},
		{name: "network", chat: &fakeChat{err: errors.New("dial tcp: connection refused")}, want: apperrors.ErrorCode_AI_NETWORK_ERROR},
		{name: "malformed", chat: &fakeChat{reply: "I cannot help with that."}, want: apperrors.ErrorCode_AI_MALFORMED_RESPONSE},
		{name: "empty", chat: &fakeChat{err: pkgai.ErrEmptyResponse}, want: apperrors.ErrorCode_AI_MALFORMED_RESPONSE},
		{name: "timeout", chat: &fakeChat{reply: remoteJSON, delay: 5 * time.Second}, want: apperrors.ErrorCode_AI_TIMEOUT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Summarizer.Timeout = 50 * time.Millisecond
			svc := NewAIService(cfg, nil, tt.chat, nil, nil, nil, zap.NewNop())

			out, err := svc.Summarize(context.Background(), SummarizeInput{Notes: roadmapNotes})
			require.NoError(t, err)
			assert.Equal(t, SourceLocal, out.Source)
			assert.Equal(t, tt.want.String(), out.SummaryError)
			assert.NotEmpty(t, out.ErrorMessage)
			assert.NotEmpty(t, out.Summary.ActionItems)
			assert.Equal(t, int32(1), atomic.LoadInt32(&tt.chat.calls), "remote is never retried")
		})
	}
}

func TestRemoteSummarizeWithoutProvider(t *testing.T) {
	svc := newTestService(t, nil, nil, nil, nil)
	res := svc.RemoteSummarize(context.Background(), roadmapNotes)
	assert.False(t, res.OK())
	assert.Equal(t, apperrors.ErrorCode_AI_SERVICE_UNAVAILABLE, res.Code)
}

func TestSummarizeMergesTranscript(t *testing.T) {
	tr := fakeTranscriber{text: "  Alex will update the roadmap by Friday.  "}
	archive := &recordingArchive{}
	svc := newTestService(t, nil, tr, nil, archive)

	out, err := svc.Summarize(context.Background(), SummarizeInput{
		Notes:     roadmapNotes,
		Audio:     []byte("RIFF"),
		AudioName: "standup.wav",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex will update the roadmap by Friday.", out.Transcript)
	assert.Empty(t, out.TranscriptionError)

	owners := []string{}
	for _, it := range out.Summary.ActionItems {
		owners = append(owners, it.Owner)
	}
	assert.Contains(t, owners, "Alex")

	assert.Contains(t, archive.objects, "summaries/"+out.ID+".txt")
	assert.Contains(t, archive.objects, "summaries/"+out.ID+".json")
	assert.Equal(t, []byte("RIFF"), archive.objects["audio/"+out.ID+"/standup.wav"])
}

func TestSummarizeTranscriptionFailures(t *testing.T) {
	boom := errors.New("upload failed")

	svc := newTestService(t, nil, fakeTranscriber{err: boom}, nil, nil)
	_, err := svc.Summarize(context.Background(), SummarizeInput{Audio: []byte("RIFF")})
	assert.Equal(t, apperrors.ErrorCode_AI_TRANSCRIPTION_FAILED, appCode(t, err))

	out, err := svc.Summarize(context.Background(), SummarizeInput{Notes: roadmapNotes, Audio: []byte("RIFF")})
	require.NoError(t, err)
	assert.Equal(t, "upload failed", out.TranscriptionError)
	assert.Empty(t, out.Transcript)

	disabled := newTestService(t, nil, nil, nil, nil)
	_, err = disabled.Summarize(context.Background(), SummarizeInput{Audio: []byte("RIFF")})
	assert.Equal(t, apperrors.ErrorCode_AI_TRANSCRIBER_DISABLED, appCode(t, err))

	empty := newTestService(t, nil, fakeTranscriber{text: "   "}, nil, nil)
	_, err = empty.Summarize(context.Background(), SummarizeInput{Audio: []byte("RIFF")})
	assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appCode(t, err))
}

func TestSummarizeCachesSuccessOnly(t *testing.T) {
	store := cache.NewMemoryStore(time.Hour)
	defer store.Close()

	chat := &fakeChat{reply: remoteJSON}
	svc := newTestService(t, chat, nil, store, nil)

	first, err := svc.Summarize(context.Background(), SummarizeInput{Notes: roadmapNotes})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.Summarize(context.Background(), SummarizeInput{Notes: roadmapNotes})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&chat.calls))

	failing := &fakeChat{err: &pkgai.APIError{Provider: "fake", StatusCode: 503}}
	svc = newTestService(t, failing, nil, store, nil)
	for i := 0; i < 2; i++ {
		out, err := svc.Summarize(context.Background(), SummarizeInput{Notes: "Alex will deploy the fix."})
		require.NoError(t, err)
		assert.False(t, out.Cached)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&failing.calls))
}

func TestSummarizeTruncatesLongInput(t *testing.T) {
	cfg := testConfig()
	cfg.Summarizer.MaxInputChars = 400
	local, err := summarizer.New(summarizer.WithBudget(cfg.Summarizer.MaxInputChars))
	require.NoError(t, err)
	svc := NewAIService(cfg, local, nil, nil, nil, nil, zap.NewNop())

	notes := strings.Repeat("The deploy pipeline was slow this week. ", 40)
	out, err := svc.Summarize(context.Background(), SummarizeInput{Notes: notes})
	require.NoError(t, err)
	assert.True(t, out.Truncated)
	assert.Equal(t, 1, strings.Count(out.Text, summarizer.OmissionMarker))
}

func TestMergeNotes(t *testing.T) {
	assert.Equal(t, "a\n\nb", MergeNotes(" a ", "b\n"))
	assert.Equal(t, "a", MergeNotes("a", "  "))
	assert.Equal(t, "b", MergeNotes("", "b"))
	assert.Equal(t, "", MergeNotes("", ""))
}

func TestRenderNormalizes(t *testing.T) {
	svc := newTestService(t, nil, nil, nil, nil)
	text := svc.Render(summarizer.BuildLocalSummary(""))
	assert.Contains(t, text, "- (none)")
}

func TestSummarizeReferenceDate(t *testing.T) {
	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()
	svc := newTestService(t, nil, nil, store, nil)
	ctx := context.Background()
	notes := "Please review the budget tomorrow."

	undated, err := svc.Summarize(ctx, SummarizeInput{Notes: notes})
	require.NoError(t, err)
	require.Len(t, undated.Summary.ActionItems, 1)
	assert.Equal(t, "tomorrow", undated.Summary.ActionItems[0].Due)

	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	dated, err := svc.Summarize(ctx, SummarizeInput{Notes: notes, ReferenceDate: monday})
	require.NoError(t, err)
	assert.False(t, dated.Cached, "a reference date must not hit the undated cache entry")
	require.Len(t, dated.Summary.ActionItems, 1)
	assert.Equal(t, "3/5", dated.Summary.ActionItems[0].Due)
}
