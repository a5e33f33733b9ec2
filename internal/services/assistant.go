package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"eventhub/internal/domain"
)

// assistantRule pairs a keyword predicate with its responder. Rules are
// evaluated in priority order; the first match wins.
type assistantRule struct {
	keywords []string
	respond  func(events []*domain.Event) string
}

type assistantService struct {
	eventRepo      domain.EventRepository
	rules          []assistantRule
	delay          time.Duration
	now            func() time.Time
	contextTimeout time.Duration
}

// NewAssistantService creates an AssistantService over the event repository.
// A positive delay simulates response latency; the wait is cancelled when the
// caller's context ends, so an abandoned request never delivers late.
func NewAssistantService(eventRepo domain.EventRepository, delay time.Duration, timeout time.Duration) domain.AssistantService {
	s := &assistantService{
		eventRepo:      eventRepo,
		delay:          delay,
		now:            time.Now,
		contextTimeout: timeout,
	}
	s.rules = []assistantRule{
		{keywords: []string{"create event", "new event"}, respond: respondCreate},
		{keywords: []string{"time slot", "when should", "best time"}, respond: respondTimeSlots},
		{keywords: []string{"description", "write", "generate"}, respond: respondDescription},
		{keywords: []string{"how many", "statistics", "stats"}, respond: respondStatistics},
		{keywords: []string{"speaker", "who should"}, respond: respondSpeakers},
		{keywords: []string{"venue", "location", "where"}, respond: respondVenues},
		{keywords: []string{"agenda", "schedule", "timeline"}, respond: respondAgenda},
		{keywords: []string{"notification", "remind", "alert"}, respond: respondNotifications},
		{keywords: []string{"list", "show", "what events"}, respond: respondEventList},
	}
	return s
}

func (s *assistantService) Respond(ctx context.Context, utterance string) (*domain.AssistantReply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	lower := strings.ToLower(utterance)
	content := respondFallback(events)
	for _, rule := range s.rules {
		if matchesAny(lower, rule.keywords) {
			content = rule.respond(events)
			break
		}
	}
	return &domain.AssistantReply{Content: content, Timestamp: s.now()}, nil
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func respondCreate([]*domain.Event) string {
	return `I can help you create a new event! Here's what you should consider:

**Event Planning Checklist:**
1. Choose a compelling event name
2. Select a date and time (I can suggest optimal time slots)
3. Pick a suitable venue
4. Define your target audience
5. Outline the event agenda
6. Invite relevant speakers

Would you like me to suggest some available time slots? Or would you like help with generating an event description?`
}

func respondTimeSlots(events []*domain.Event) string {
	busy := make([]string, 0, len(events))
	for _, e := range events {
		busy = append(busy, fmt.Sprintf("%s at %s", e.Date, e.Time))
	}
	busyLine := "None"
	if len(busy) > 0 {
		busyLine = strings.Join(busy, ", ")
	}
	return fmt.Sprintf(`Based on your current schedule, here are some recommended time slots:

**Available Time Slots:**
• Monday-Friday: 9:00 AM - 11:00 AM (Morning sessions work well for professional events)
• Monday-Friday: 2:00 PM - 4:00 PM (Afternoon slots for workshops)
• Weekends: 10:00 AM - 3:00 PM (Great for community events)

Currently busy slots: %s

Would you like me to check for conflicts on a specific date?`, busyLine)
}

func respondDescription([]*domain.Event) string {
	return `I can generate compelling event descriptions! Here's a template:

**Sample Event Description:**
"Join us for an engaging [EVENT TYPE] that brings together industry leaders and innovators. This event will feature:

✨ Keynote presentations from renowned experts
🤝 Networking opportunities with peers
📚 Hands-on workshops and learning sessions
🎯 Actionable insights and takeaways

Whether you're a seasoned professional or just starting out, this event offers valuable content for everyone. Don't miss this opportunity to learn, connect, and grow!"

Would you like me to customize this for your specific event?`
}

func respondStatistics(events []*domain.Event) string {
	totalEvents := len(events)
	totalAttendees := 0
	upcoming := 0
	now := time.Now()
	for _, e := range events {
		totalAttendees += len(e.Attendees)
		if eventIsUpcoming(e, now) {
			upcoming++
		}
	}
	average := 0
	if totalEvents > 0 {
		average = int(math.Round(float64(totalAttendees) / float64(totalEvents)))
	}
	tail := "No events yet. Create your first event!"
	if totalEvents > 0 {
		tail = fmt.Sprintf("Your most recent event: %q", events[len(events)-1].Name)
	}
	return fmt.Sprintf(`Here are your event statistics:

📊 **Event Statistics**
• Total Events: %d
• Upcoming Events: %d
• Total Attendees: %d
• Average Attendees per Event: %d

%s`, totalEvents, upcoming, totalAttendees, average, tail)
}

func respondSpeakers([]*domain.Event) string {
	return `Here are some suggestions for finding great speakers:

🎤 **Speaker Sourcing Tips:**
1. Industry experts and thought leaders
2. Previous successful event speakers
3. Authors and researchers in your field
4. Company executives and innovators
5. Community leaders and activists

**Popular Speaker Topics:**
• Technology and Innovation
• Leadership and Management
• Marketing and Sales
• Personal Development
• Industry Trends and Future Outlook

Would you like suggestions for speakers in a specific field?`
}

func respondVenues([]*domain.Event) string {
	return `Let me help you choose the perfect venue!

🏢 **Venue Considerations:**
• **Capacity**: Ensure it fits your expected attendance
• **Location**: Accessible by public transport and parking
• **Amenities**: WiFi, AV equipment, catering facilities
• **Ambiance**: Matches your event's tone and style
• **Budget**: Fits within your allocated budget

**Popular Venue Types:**
• Conference Centers (professional events)
• Hotels (multi-day conferences)
• Co-working Spaces (workshops and meetups)
• Universities (academic events)
• Outdoor Venues (casual gatherings)

What type of event are you planning?`
}

func respondAgenda([]*domain.Event) string {
	return `Here's a sample event agenda structure:

📋 **Recommended Event Timeline:**

**Morning Session**
• 09:00 - 09:30: Registration & Welcome Coffee
• 09:30 - 10:00: Opening Remarks
• 10:00 - 11:00: Keynote Presentation
• 11:00 - 11:15: Break

**Mid-Day**
• 11:15 - 12:30: Panel Discussion
• 12:30 - 13:30: Lunch & Networking

**Afternoon Session**
• 13:30 - 14:30: Workshop Session A
• 14:30 - 15:30: Workshop Session B
• 15:30 - 16:00: Closing Remarks & Q&A

Would you like me to customize this for your event duration?`
}

func respondNotifications([]*domain.Event) string {
	return `I can help you set up event notifications!

📧 **Notification Types:**
• Registration confirmation emails
• Event reminder (24 hours before)
• Day-of event SMS alerts
• Post-event follow-up messages
• Schedule change updates

**Best Practices:**
• Send reminders 1 week, 1 day, and 1 hour before
• Include event details and venue information
• Add calendar invite attachments
• Provide contact information for questions

Would you like help crafting a notification message?`
}

func respondEventList(events []*domain.Event) string {
	if len(events) == 0 {
		return `You don't have any events yet. Would you like to create your first event? I can help guide you through the process!`
	}
	lines := make([]string, 0, len(events))
	for i, e := range events {
		lines = append(lines, fmt.Sprintf("%d. **%s** - %s at %s (%d attendees)", i+1, e.Name, e.Date, e.Time, len(e.Attendees)))
	}
	return fmt.Sprintf("Here are your current events:\n\n%s\n\nWould you like more details about any specific event?", strings.Join(lines, "\n"))
}

func respondFallback([]*domain.Event) string {
	return `That's a great question! While I'm an AI assistant, I can help you with various aspects of event management:

• **Event Creation**: Help plan and organize events
• **Scheduling**: Find optimal time slots
• **Content Generation**: Create descriptions, agendas, and materials
• **Analytics**: Provide insights on your events
• **Recommendations**: Suggest speakers, venues, and improvements

Try asking me things like:
- "Help me create a new event"
- "What time slots are available?"
- "Generate an event description"
- "Show me event statistics"
- "Suggest speakers for my tech conference"

What would you like help with?`
}
