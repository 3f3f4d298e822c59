package generator

import "github.com/maheshrc27/marketing-hub/internal/models"

// Placeholders: {business}, {audience}, {tip}, {step}.
var toneTemplates = map[models.MarketingTone][]string{
	models.ToneFriendly: {
		"Hey {audience}! Our {business} crew has a little secret to share: {tip}",
		"Quick {business} tip for {audience}: {tip} Tell us how it goes!",
		"We love our {business} community. Here's a friendly nudge for {audience}: {step}",
		"Coffee-chat moment from your favorite {business} team: {tip}",
		"Fresh from the {business} studio for {audience}: {step} Tag a friend who needs this.",
	},
	models.ToneProfessional: {
		"Insight for {audience}: leading {business} teams focus on one thing. {tip}",
		"{business} best practice: {step} Results follow consistency.",
		"Three-minute read for {audience}. What high-performing {business} brands do differently: {tip}",
		"From our {business} playbook: {step} Message us to discuss your goals.",
	},
	models.ToneLuxury: {
		"Crafted for the discerning. Our {business} experience, reserved for {audience}: {tip}",
		"Elevate every detail. The {business} standard: {step}",
		"Exclusivity, redefined. {audience} deserve a {business} experience like this: {tip}",
		"Quiet luxury from a {business} house that sweats the details: {step}",
	},
	models.ToneMotivational: {
		"Your {business} goals are closer than you think. {tip} Start today!",
		"{audience}, this is your sign. {step} Every {business} win starts with one move.",
		"Small steps, big {business} results. {tip} Keep going!",
		"No more waiting. {business} growth happens when you act: {step}",
		"Dream it, plan it, post it. {audience}, here's your {business} fuel: {tip}",
	},
}

// platformFrames wrap a tone line in the conventions of each platform.
var platformFrames = map[models.MarketingPlatform][]string{
	models.MarketingInstagram: {
		"%s\n\nDouble tap if you agree and save this for later.",
		"%s\n\nDrop a comment below with your take.",
		"%s\n\nLink in bio for more.",
	},
	models.MarketingTikTok: {
		"POV: %s",
		"%s\n\nFollow for part 2.",
		"Stitch this with your story. %s",
	},
	models.MarketingFacebook: {
		"%s\n\nShare this with someone who needs it today.",
		"%s\n\nWhat do you think? Let us know in the comments.",
		"%s",
	},
	models.MarketingYouTube: {
		"%s\n\nWatch the full video and subscribe for weekly tips.",
		"In this video: %s",
		"%s\n\nTimestamps in the description.",
	},
	models.MarketingLinkedIn: {
		"%s\n\nWhat has worked for your team? I'd value your perspective.",
		"A lesson worth sharing.\n\n%s",
		"%s\n\n#leadership #growth",
	},
	models.MarketingPinterest: {
		"%s Save this pin for later.",
		"%s",
		"Idea board: %s",
	},
	models.MarketingEmail: {
		"Subject: A quick idea for you\n\n%s\n\nReply to this email and we'll help you get started.",
		"Subject: This week's insight\n\n%s",
		"Hi there,\n\n%s\n\nTalk soon.",
	},
}

type businessAdvice struct {
	keywords []string
	tips     []string
	steps    []string
}

// businessTable is matched in order against the lower-cased business type.
var businessTable = []businessAdvice{
	{
		keywords: []string{"e-commerce", "ecommerce", "shop", "store", "retail"},
		tips: []string{
			"Abandoned-cart reminders recover sales you already earned.",
			"Bundles raise average order value without discounting.",
			"Customer photos convert better than studio shots.",
		},
		steps: []string{
			"Feature one bestseller and one hidden gem side by side.",
			"Add a countdown to your next restock announcement.",
			"Turn your top review into this week's headline.",
		},
	},
	{
		keywords: []string{"saas", "tech", "software", "app"},
		tips: []string{
			"Show the outcome, not the feature list.",
			"A 30-second product walkthrough beats a long demo.",
			"Onboarding emails are your quiet growth engine.",
		},
		steps: []string{
			"Share a before-and-after of a customer workflow.",
			"Post a changelog highlight with a real use case.",
			"Invite users to a live Q&A with your product team.",
		},
	},
	{
		keywords: []string{"fitness", "wellness", "gym", "yoga"},
		tips: []string{
			"Consistency beats intensity every single week.",
			"Short form-check videos build instant trust.",
			"Client transformation stories do the selling for you.",
		},
		steps: []string{
			"Post a 3-move routine people can try at home.",
			"Share a member milestone and celebrate it loudly.",
			"Start a 7-day challenge with a daily check-in.",
		},
	},
	{
		keywords: []string{"coach", "consult"},
		tips: []string{
			"Teach the what for free and sell the how.",
			"One client win story outperforms ten promises.",
			"Clarity on who you serve doubles your reach.",
		},
		steps: []string{
			"Answer the question you hear most on discovery calls.",
			"Share a framework your clients use every week.",
			"Open three spots for a free strategy session.",
		},
	},
	{
		keywords: []string{"food", "beverage", "restaurant", "cafe", "bakery"},
		tips: []string{
			"Behind-the-scenes kitchen clips earn the most saves.",
			"Seasonal specials create natural urgency.",
			"Steam, sizzle and slow pours stop the scroll.",
		},
		steps: []string{
			"Film the first pour of the morning.",
			"Let your team pick and present a weekly favorite.",
			"Post tonight's special before the lunch rush ends.",
		},
	},
	{
		keywords: []string{"fashion", "beauty", "salon", "cosmetic"},
		tips: []string{
			"Styling one piece three ways sells the piece.",
			"Real-skin, no-filter results build loyalty.",
			"Trend commentary keeps your brand in the conversation.",
		},
		steps: []string{
			"Post a get-ready-with-me featuring your newest drop.",
			"Run a poll on next season's color.",
			"Share a client before-and-after with permission.",
		},
	},
	{
		keywords: []string{"real estate", "realtor", "property"},
		tips: []string{
			"Neighborhood guides attract buyers before listings do.",
			"Video walkthroughs cut wasted showings.",
			"Market updates position you as the local expert.",
		},
		steps: []string{
			"Post a 60-second tour of a new listing.",
			"Share three things buyers overlook at open houses.",
			"Highlight a local business near your latest listing.",
		},
	},
	{
		keywords: []string{"finance", "invest", "accounting", "insurance"},
		tips: []string{
			"Plain-language explainers earn trust fast.",
			"One myth busted per week builds authority.",
			"Calculators and checklists get shared and saved.",
		},
		steps: []string{
			"Break down one money myth in three slides.",
			"Share a simple checklist for the end of the quarter.",
			"Answer a reader question in under a minute.",
		},
	},
	{
		keywords: []string{"education", "training", "course", "school", "tutor"},
		tips: []string{
			"Micro-lessons drive enrollment better than ads.",
			"Student wins are your best testimonials.",
			"Free mini-courses fill the top of your funnel.",
		},
		steps: []string{
			"Teach one concept in under 60 seconds.",
			"Share a student project and what they learned.",
			"Offer a free first lesson with a clear next step.",
		},
	},
	{
		keywords: []string{"health", "clinic", "medical", "dental"},
		tips: []string{
			"Approachable answers to common questions build trust.",
			"Meet-the-team posts ease first-visit nerves.",
			"Prevention tips get shared across families.",
		},
		steps: []string{
			"Answer one frequently asked question this week.",
			"Introduce a team member and their specialty.",
			"Share a seasonal wellness reminder.",
		},
	},
	{
		keywords: []string{"travel", "hospitality", "hotel", "tour"},
		tips: []string{
			"Guest-shot content sells the experience for you.",
			"Hidden-gem guides keep you top of mind.",
			"Off-season offers fill calendars early.",
		},
		steps: []string{
			"Post a sunrise from your best view.",
			"Share a local itinerary for a perfect weekend.",
			"Feature a guest story with their permission.",
		},
	},
	{
		keywords: []string{"nonprofit", "charity", "foundation"},
		tips: []string{
			"Impact stories move people more than statistics.",
			"Thanking donors publicly inspires new ones.",
			"Volunteer spotlights build community.",
		},
		steps: []string{
			"Share one person's story and the change it made.",
			"Post a progress bar toward this month's goal.",
			"Spotlight a volunteer and why they give their time.",
		},
	},
	{
		keywords: []string{"agency", "marketing"},
		tips: []string{
			"Case studies with numbers close deals.",
			"Sharing your process signals confidence.",
			"Niche expertise beats generalist promises.",
		},
		steps: []string{
			"Publish a mini case study with one clear metric.",
			"Walk through your onboarding in five steps.",
			"Audit a public campaign and share three takeaways.",
		},
	},
}

var genericAdvice = businessAdvice{
	tips: []string{
		"Consistency builds trust faster than perfection.",
		"Answering real customer questions creates your best content.",
		"A clear call to action doubles engagement.",
	},
	steps: []string{
		"Share one lesson you learned this month.",
		"Show the people behind the brand.",
		"Ask your audience what they want to see next.",
	},
}

// postLimits are advisory caption limits for each marketing platform.
var postLimits = map[models.MarketingPlatform]int{
	models.MarketingInstagram: 2200,
	models.MarketingTikTok:    2200,
	models.MarketingFacebook:  63206,
	models.MarketingYouTube:   5000,
	models.MarketingLinkedIn:  3000,
	models.MarketingPinterest: 500,
}
