package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cultrend/trendseer/internal/brand"
	"github.com/cultrend/trendseer/internal/catalog"
	"github.com/cultrend/trendseer/internal/profile"
	"github.com/cultrend/trendseer/internal/recommend"
	"github.com/cultrend/trendseer/internal/trends"
)

// Greeting is the opening assistant message shown before any input.
const Greeting = "Hi! I'm TrendSeer. I can predict emerging trends based on your " +
	"cultural preferences. Let's start by learning about your tastes - say anything to begin!"

// Engine turns session state plus one user input into the next
// assistant reply. It owns no conversation state itself; everything
// mutable lives in the Session, so one Engine serves any number of
// conversations.
type Engine struct {
	analyzer *trends.Analyzer
	ranker   *recommend.Ranker
	catalog  *catalog.Store
	brands   *brand.Builder
	store    *Store
	log      zerolog.Logger

	// Timeframe used for the end-of-conversation analysis.
	Timeframe string
	// TopN bounds how many predictions and recommendations are rendered.
	TopN int
}

// NewEngine creates a chat engine. The store may be nil, in which case
// history is not persisted.
func NewEngine(analyzer *trends.Analyzer, ranker *recommend.Ranker, cat *catalog.Store, brands *brand.Builder, store *Store, log zerolog.Logger) *Engine {
	return &Engine{
		analyzer:  analyzer,
		ranker:    ranker,
		catalog:   cat,
		brands:    brands,
		store:     store,
		log:       log,
		Timeframe: "90d",
		TopN:      3,
	}
}

// Process consumes one user input and returns the assistant reply.
func (e *Engine) Process(ctx context.Context, sess *Session, input string) string {
	prev := sess.Stage
	if !sess.Submit(input) {
		return "I've already noted that. Tell me something new, or say anything to continue."
	}

	var reply string
	switch prev {
	case StageGreeting:
		reply = musicPrompt
	case StageMusic:
		reply = ack("you enjoy", sess.Captured(profile.DomainMusic)) + "\n\n" + diningPrompt
	case StageDining:
		reply = ack("your dining style", sess.Captured(profile.DomainDining)) + "\n\n" + fashionPrompt
	case StageFashion:
		reply = ack("your fashion vibe", sess.Captured(profile.DomainFashion)) + "\n\n" + entertainmentPrompt
	case StageEntertainment:
		reply = ack("your entertainment choices", sess.Captured(profile.DomainEntertainment)) + "\n\n" + lifestylePrompt
	case StageLifestyle:
		reply = e.profileSummary(sess)
	case StageAnalysis:
		reply = e.runAnalysis(ctx, sess)
	default:
		reply = "I'm ready to help you discover new trends! Start a new session to explore again."
	}

	e.persist(sess, input, reply)
	return reply
}

// profileSummary renders the collected preferences and announces the
// upcoming analysis.
func (e *Engine) profileSummary(sess *Session) string {
	prefs := sess.Preferences()

	var b strings.Builder
	b.WriteString(ack("your lifestyle values", prefs.Lifestyle))
	b.WriteString("\n\nYour complete cultural profile:\n")
	fmt.Fprintf(&b, "- Music: %s\n", joinOrNone(prefs.Music))
	fmt.Fprintf(&b, "- Dining: %s\n", joinOrNone(prefs.Dining))
	fmt.Fprintf(&b, "- Fashion: %s\n", joinOrNone(prefs.Fashion))
	fmt.Fprintf(&b, "- Entertainment: %s\n", joinOrNone(prefs.Entertainment))
	fmt.Fprintf(&b, "- Lifestyle: %s\n", joinOrNone(prefs.Lifestyle))
	b.WriteString("\nNow let me analyze your cultural DNA and predict emerging trends just for you. Say anything to run the analysis!")
	return b.String()
}

// runAnalysis executes the full pipeline and renders the results.
func (e *Engine) runAnalysis(ctx context.Context, sess *Session) string {
	prefs := sess.Preferences()

	prof := e.analyzer.BuildProfile(ctx, prefs)
	analysis := e.analyzer.PredictForProfile(ctx, prof, e.Timeframe)
	kit := e.brands.Build(ctx, prof)
	recs := e.ranker.Rank(prof, e.catalog.All(), e.TopN)

	var b strings.Builder
	fmt.Fprintf(&b, "Your personalized trend predictions (next %s):\n", e.Timeframe)

	top := analysis.Predictions
	if len(top) > e.TopN {
		top = top[:e.TopN]
	}
	for i, p := range top {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, p.PredictedTrend)
		fmt.Fprintf(&b, "   Confidence: %.0f%% | Timeline: %d days\n", p.ConfidenceScore, p.TimelineDays)
		if len(p.TargetAudience) > 0 {
			fmt.Fprintf(&b, "   Perfect for: %s\n", strings.Join(firstN(p.TargetAudience, 2), ", "))
		}
		fmt.Fprintf(&b, "   Why: %s\n", truncate(p.CulturalReasoning, 150))
	}

	if len(recs) > 0 {
		b.WriteString("\nPicked for you:\n")
		for _, r := range recs {
			fmt.Fprintf(&b, "- %s (%s) - %s\n", r.Item.Name, r.Item.Price, r.Explanation.Primary())
		}
	}

	fmt.Fprintf(&b, "\nYour brand identity: %s - %q\n", kit.BrandName, kit.Tagline)
	fmt.Fprintf(&b, "\nAverage prediction confidence: %.1f%%. Want to explore more trends? Start a new session!",
		analysis.AverageConfidence)
	return b.String()
}

// persist writes the turn to the history store, best effort.
func (e *Engine) persist(sess *Session, input, reply string) {
	if e.store == nil {
		return
	}
	if err := e.store.SaveSession(sess); err != nil {
		e.log.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to persist session")
		return
	}
	if err := e.store.SaveMessage(sess.ID, "user", input); err != nil {
		e.log.Warn().Err(err).Msg("failed to persist user message")
	}
	if err := e.store.SaveMessage(sess.ID, "assistant", reply); err != nil {
		e.log.Warn().Err(err).Msg("failed to persist assistant message")
	}
}

// ============================================================
// Stage prompts
// ============================================================

const musicPrompt = `Let's start with music! What genres do you enjoy? You can mention multiple, like:
- Indie rock, folk, electronic
- Hip-hop, jazz, R&B
- Classical, pop, country
Or describe your taste in your own words!`

const diningPrompt = `Now, let's talk about food and dining! Tell me about:
- Types of cuisine you love
- Dining styles (fine dining, street food, ...)
- Drinks (coffee, cocktails, ...)
- Any specific food values (organic, local, ...)`

const fashionPrompt = `Let's explore your fashion sense! How would you describe your style?
- Aesthetic preferences (minimalist, vintage, modern)
- Values (sustainable, luxury, budget-friendly)
- Specific styles (streetwear, classic, bohemian)`

const entertainmentPrompt = `What about entertainment? How do you like to spend your free time?
- Movies and TV preferences
- Activities you enjoy
- Hobbies and interests`

const lifestylePrompt = `Finally, tell me about your lifestyle! What values and choices matter to you?
- Work style (remote, office, freelance)
- Life values (sustainability, wellness, productivity)
- Living preferences (urban, suburban, minimalist)`

func ack(lead string, values []string) string {
	return fmt.Sprintf("Great! I see %s: %s", lead, joinOrNone(values))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(nothing captured yet)"
	}
	return strings.Join(values, ", ")
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
