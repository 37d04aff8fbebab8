package sqlite

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"RecyclePress/pkg/bcrypt"
)

const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@auto-recycling.com"
	seedAdminPassword = "admin123"
)

type seedCategory struct {
	ID   string
	Name string
	Slug string
}

type seedArticle struct {
	ID            string
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	Author        string
	CategoryID    string
	PublishedDate string
}

// seed inserts the fixed admin account when no admin exists yet, and the
// fixed sample categories and articles when the categories table is empty.
// Each group goes in as one all-or-nothing transaction.
func seed(db *sqlx.DB, bcryptUtils bcrypt.IBcrypt) error {
	if err := seedAdminUser(db, bcryptUtils); err != nil {
		return err
	}
	return seedSampleContent(db)
}

func seedAdminUser(db *sqlx.DB, bcryptUtils bcrypt.IBcrypt) error {
	var adminCount int
	if err := db.Get(&adminCount, `SELECT COUNT(*) FROM users WHERE role = ?`, "admin"); err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if adminCount > 0 {
		return nil
	}

	hashed, err := bcryptUtils.HashPassword(seedAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO users (id, username, email, password, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		"1", seedAdminUsername, seedAdminEmail, hashed, "admin", time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}

func seedSampleContent(db *sqlx.DB) error {
	var categoryCount int
	if err := db.Get(&categoryCount, `SELECT COUNT(*) FROM categories`); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if categoryCount > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	for _, c := range sampleCategories {
		if _, err := tx.Exec(
			`INSERT INTO categories (id, name, slug, created_at) VALUES (?, ?, ?, ?)`,
			c.ID, c.Name, c.Slug, now,
		); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Slug, err)
		}
	}

	for _, a := range sampleArticles {
		if _, err := tx.Exec(
			`INSERT INTO articles (id, title, slug, excerpt, content, image_url, author, category_id, published_date, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Title, a.Slug, a.Excerpt, a.Content, "", a.Author, a.CategoryID, a.PublishedDate, now, now,
		); err != nil {
			return fmt.Errorf("failed to seed article %q: %w", a.Slug, err)
		}
	}

	return tx.Commit()
}

var sampleCategories = []seedCategory{
	{ID: "1", Name: "Industry News", Slug: "industry-news"},
	{ID: "2", Name: "Technology", Slug: "technology"},
	{ID: "3", Name: "Sustainability", Slug: "sustainability"},
	{ID: "4", Name: "Market Analysis", Slug: "market-analysis"},
	{ID: "5", Name: "Best Practices", Slug: "best-practices"},
}

var sampleArticles = []seedArticle{
	{
		ID:      "1",
		Title:   "Automotive Recycling Industry Sees Record Growth in 2025",
		Slug:    "automotive-recycling-industry-record-growth-2025",
		Excerpt: "The global automotive recycling industry has experienced unprecedented growth this year, driven by increasing environmental regulations and consumer awareness.",
		Content: `The global automotive recycling industry has experienced unprecedented growth in 2025, driven by increasing environmental regulations and consumer awareness about sustainability. According to recent reports, the market has expanded by over 15% compared to the previous year, with projections indicating continued momentum through the next decade.

Key factors contributing to this growth include:
- Stricter environmental regulations worldwide
- Rising demand for recycled materials in manufacturing
- Advancements in recycling technologies
- Growing consumer preference for sustainable products

Industry experts predict that the automotive recycling sector will continue to evolve, with new opportunities emerging in electric vehicle battery recycling and advanced material recovery processes.`,
		Author:        "Sarah Johnson",
		CategoryID:    "1",
		PublishedDate: "2025-02-01",
	},
	{
		ID:      "2",
		Title:   "New AI Technology Revolutionizes Parts Sorting",
		Slug:    "new-ai-technology-revolutionizes-parts-sorting",
		Excerpt: "Artificial intelligence is transforming how automotive recyclers identify and sort parts, improving efficiency and accuracy across the industry.",
		Content: `Artificial intelligence is transforming how automotive recyclers identify and sort parts, improving efficiency and accuracy across the industry. This groundbreaking technology uses machine learning algorithms to recognize and categorize components with near-perfect accuracy.

The benefits of AI-powered sorting include:
- 95% accuracy in part identification
- 40% reduction in processing time
- Lower labor costs
- Improved material recovery rates

Leading recycling facilities have reported significant improvements in their operations after implementing these systems. The technology is particularly effective in distinguishing between similar-looking parts and identifying valuable components that might otherwise be missed.`,
		Author:        "Michael Chen",
		CategoryID:    "2",
		PublishedDate: "2025-01-28",
	},
	{
		ID:      "3",
		Title:   "Electric Vehicle Battery Recycling: Challenges and Opportunities",
		Slug:    "electric-vehicle-battery-recycling-challenges-opportunities",
		Excerpt: "As EV adoption accelerates, the recycling industry faces new challenges in handling lithium-ion batteries while discovering valuable opportunities.",
		Content: `As electric vehicle adoption accelerates worldwide, the recycling industry faces new challenges in handling lithium-ion batteries while discovering valuable opportunities in this emerging market. The first wave of mass-produced EVs is now reaching end-of-life, creating urgent needs for effective recycling solutions.

Current challenges include:
- Complex battery chemistries requiring specialized processing
- Safety concerns during dismantling and transport
- Evolving regulatory frameworks
- Infrastructure requirements for large-scale recycling

However, these challenges also present significant opportunities:
- Recovery of valuable materials (lithium, cobalt, nickel)
- Development of new recycling technologies
- Growing market for recycled battery materials
- Potential for circular economy in EV manufacturing

Industry leaders are investing heavily in R&D to develop efficient and cost-effective recycling processes.`,
		Author:        "Emily Rodriguez",
		CategoryID:    "3",
		PublishedDate: "2025-01-25",
	},
	{
		ID:      "4",
		Title:   "Market Analysis: Steel Prices Impact on Recycling Margins",
		Slug:    "market-analysis-steel-prices-impact-recycling-margins",
		Excerpt: "Fluctuating steel prices are significantly affecting profit margins for automotive recyclers, requiring strategic adjustments in operations.",
		Content: `Fluctuating steel prices are significantly affecting profit margins for automotive recyclers, requiring strategic adjustments in operations. The past year has seen steel prices experience substantial volatility, creating both challenges and opportunities for the recycling sector.

Market analysts note several key trends:
- Steel prices have varied by over 30% in the past 12 months
- Global supply chain disruptions continue to impact pricing
- Demand from construction and manufacturing sectors remains strong
- Trade policies and tariffs add complexity to price forecasts

Successful recyclers are adapting by:
- Diversifying their material recovery focus
- Implementing better inventory management
- Building strategic partnerships with buyers
- Investing in processing efficiency improvements

Looking ahead, experts recommend careful market monitoring and flexible operational strategies to navigate the uncertain pricing environment.`,
		Author:        "David Thompson",
		CategoryID:    "4",
		PublishedDate: "2025-01-20",
	},
	{
		ID:      "5",
		Title:   "Best Practices: Implementing Sustainable Operations",
		Slug:    "best-practices-implementing-sustainable-operations",
		Excerpt: "Learn how leading recycling facilities are adopting sustainable practices that benefit both the environment and their bottom line.",
		Content: `Leading recycling facilities are increasingly adopting sustainable practices that benefit both the environment and their bottom line. These best practices demonstrate how environmental responsibility can align with business success.

Key sustainable practices include:
- Energy-efficient processing equipment
- Water conservation and recycling systems
- Renewable energy adoption (solar, wind)
- Waste reduction programs
- Sustainable transportation for logistics

Success stories from industry leaders show:
- Up to 40% reduction in energy consumption
- Significant cost savings from efficiency improvements
- Enhanced brand reputation and customer loyalty
- Compliance advantage with environmental regulations
- Improved employee satisfaction and retention

Implementation strategies:
1. Conduct baseline sustainability assessments
2. Set measurable goals and targets
3. Invest in proven technologies
4. Train staff on new procedures
5. Monitor and report progress regularly

The path to sustainability requires commitment and investment, but the returns in efficiency, cost savings, and market positioning make it a wise business decision.`,
		Author:        "Lisa Park",
		CategoryID:    "5",
		PublishedDate: "2025-01-15",
	},
	{
		ID:      "6",
		Title:   "Breakthrough in Aluminum Recovery Technology",
		Slug:    "breakthrough-aluminum-recovery-technology",
		Excerpt: "A new technology for aluminum recovery is changing the economics of automotive recycling, offering higher yields and lower costs.",
		Content: `A revolutionary new technology for aluminum recovery is changing the economics of automotive recycling, offering significantly higher yields and lower operational costs. This breakthrough could reshape how the industry handles aluminum-rich components from end-of-life vehicles.

The technology features:
- Advanced separation techniques for aluminum alloys
- Near-100% recovery rates for pure aluminum
- Lower energy consumption than traditional methods
- Ability to process mixed metal streams effectively

Industry impact:
- 25% increase in overall aluminum recovery
- 30% reduction in processing costs
- Improved quality of recovered aluminum
- New opportunities for value-added products

Early adopters of this technology report substantial improvements in their bottom line. The system pays for itself within 18 months through increased revenue and reduced operational expenses.

As the automotive industry increases its use of aluminum to improve fuel efficiency, this technology becomes increasingly valuable. Analysts predict widespread adoption over the next five years as facilities upgrade their capabilities.`,
		Author:        "Robert Williams",
		CategoryID:    "2",
		PublishedDate: "2025-01-10",
	},
}
