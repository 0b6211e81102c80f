package catalog

import (
	"topclass/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FixtureSet holds the hardcoded sample catalog served for the known
// category labels and the early-bird tag. It stands in for a curated
// merchandising catalog and never touches the store.
type FixtureSet struct {
	free        []models.Course
	earlyBird   []models.Course
	programming []models.Course
	design      []models.Course
	marketing   []models.Course
	business    []models.Course
}

// EarlyBird returns the promotional early-bird set.
func (f *FixtureSet) EarlyBird() []models.Course {
	return f.earlyBird
}

// Category returns the fixture set for a known category label.
func (f *FixtureSet) Category(label string) ([]models.Course, bool) {
	switch label {
	case CategoryFree:
		return f.free, true
	case CategoryProgramming:
		return f.programming, true
	case CategoryDesign:
		return f.design, true
	case CategoryMarketing:
		return f.marketing, true
	case CategoryBusiness:
		return f.business, true
	}
	return nil, false
}

// All returns the union of every fixture set, free courses first.
func (f *FixtureSet) All() []models.Course {
	all := make([]models.Course, 0,
		len(f.free)+len(f.earlyBird)+len(f.programming)+len(f.design)+len(f.marketing)+len(f.business))
	all = append(all, f.free...)
	all = append(all, f.earlyBird...)
	all = append(all, f.programming...)
	all = append(all, f.design...)
	all = append(all, f.marketing...)
	all = append(all, f.business...)
	return all
}

func published(id uint, c models.Course) models.Course {
	c.Model = gorm.Model{ID: id}
	c.Status = models.CoursePublished
	c.Published = true
	return c
}

// DefaultFixtures builds the sample catalog.
func DefaultFixtures() *FixtureSet {
	return &FixtureSet{
		free: []models.Course{
			published(1, models.Course{
				Title:        "Earn With AI Photography: The All-In-One Free Course",
				Description:  "Turn AI image tools into a side income as a portrait photographer. A step-by-step guide beginners can follow.",
				Instructor:   "Papa Jones",
				Category:     CategoryFree,
				Duration:     90,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"ai", "photography"}),
				StudentCount: 1234, Rating: 4.8, ReviewCount: 212,
			}),
			published(2, models.Course{
				Title:        "Zero-Budget Side Income for Complete Beginners",
				Description:  "Start earning an extra paycheck with no upfront investment. Practical methods anyone can follow.",
				Instructor:   "Kim Harin",
				Category:     CategoryFree,
				Duration:     120,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"side-income"}),
				StudentCount: 987, Rating: 4.6, ReviewCount: 140,
			}),
			published(3, models.Course{
				Title:        "AI Dropshipping: How a Homemaker Hit Nine Figures",
				Description:  "Monetize rocket-delivery marketplaces with AI automation. A field-tested playbook for beginners.",
				Instructor:   "Gwangma",
				Category:     CategoryFree,
				Duration:     100,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"ai", "ecommerce"}),
				StudentCount: 2156, Rating: 4.7, ReviewCount: 330,
			}),
			published(4, models.Course{
				Title:        "AI-Automated Overseas Buying Agency From Scratch",
				Description:  "Launch a cross-border purchasing agency with AI automation, even with no prior experience.",
				Instructor:   "Hong Sisam",
				Category:     CategoryFree,
				Duration:     110,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"ai", "import"}),
				StudentCount: 756, Rating: 4.5, ReviewCount: 98,
			}),
			published(5, models.Course{
				Title:        "Referral Side Hustles Anyone Can Start",
				Description:  "Monetize referrals and introductions. An easy entry point for first-time earners.",
				Instructor:   "Hyunwoo",
				Category:     CategoryFree,
				Duration:     85,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"side-income"}),
				StudentCount: 1543, Rating: 4.4, ReviewCount: 187,
			}),
			published(6, models.Course{
				Title:        "YouTube Carry: Channel Growth for Absolute Beginners",
				Description:  "Grow a YouTube channel from zero with proven hooks, thumbnails and retention tactics.",
				Instructor:   "Jasaengbeop",
				Category:     CategoryFree,
				Duration:     95,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"youtube"}),
				StudentCount: 2341, Rating: 4.9, ReviewCount: 402,
			}),
			published(7, models.Course{
				Title:        "Affiliate Marketing: Your First Million Won a Month",
				Description:  "Affiliate marketing from fundamentals to practice, in a step-by-step guide for beginners.",
				Instructor:   "Affiliate Lab",
				Category:     CategoryFree,
				Duration:     120,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"affiliate"}),
				StudentCount: 1856, Rating: 4.6, ReviewCount: 255,
			}),
			published(8, models.Course{
				Title:        "Affiliate Monetization Bootcamp, 4th Cohort",
				Description:  "Real-world affiliate monetization with live case studies and hands-on funnels.",
				Instructor:   "Affiliate Lab",
				Category:     CategoryFree,
				Duration:     150,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"affiliate"}),
				StudentCount: 3247, Rating: 4.7, ReviewCount: 489,
			}),
		},
		earlyBird: []models.Course{
			published(9, models.Course{
				Title:        "AI Marketing Automation Masterclass — 30% Off",
				Description:  "Everything about automating your marketing with AI, at an early-bird discount.",
				Instructor:   "Seo Jiyoon",
				Category:     CategoryMarketing,
				Price:        70000, OriginalPrice: 100000, Discount: 30, IsEarlyBird: true,
				Duration:     180,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{TagEarlyBird, "ai", "marketing"}),
				StudentCount: 456, Rating: 4.8, ReviewCount: 61,
			}),
			published(10, models.Course{
				Title:        "Freelance Designer Income Maximization Strategy",
				Description:  "Practical strategies for maximizing income as a freelance designer. Early-bird special!",
				Instructor:   "Lee Dohyun",
				Category:     CategoryDesign,
				Price:        56000, OriginalPrice: 80000, Discount: 30, IsEarlyBird: true,
				Duration:     150,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{TagEarlyBird, "freelance", "design"}),
				StudentCount: 234, Rating: 4.5, ReviewCount: 29,
			}),
			published(11, models.Course{
				Title:        "The Road to 100K YouTube Subscribers",
				Description:  "The exact system for growing a channel to one hundred thousand subscribers. Early-bird only pricing!",
				Instructor:   "Jasaengbeop",
				Category:     CategoryMarketing,
				Price:        84000, OriginalPrice: 120000, Discount: 30, IsEarlyBird: true,
				Duration:     200,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{TagEarlyBird, "youtube"}),
				StudentCount: 789, Rating: 4.9, ReviewCount: 122,
			}),
			published(12, models.Course{
				Title:        "A Winning Business Model for Online Stores",
				Description:  "Build an online store that actually sells, from positioning to repeat purchase loops. Early-bird deal!",
				Instructor:   "Park Minsu",
				Category:     CategoryBusiness,
				Price:        105000, OriginalPrice: 150000, Discount: 30, IsEarlyBird: true,
				Duration:     240,
				Level:        models.LevelAdvanced,
				Tags:         datatypes.NewJSONSlice([]string{TagEarlyBird, "ecommerce"}),
				StudentCount: 345, Rating: 4.6, ReviewCount: 47,
			}),
			published(13, models.Course{
				Title:        "No-Code Websites: The Complete Guide",
				Description:  "Build professional websites without writing a line of code. Early-bird special!",
				Instructor:   "Choi Yuna",
				Category:     CategoryProgramming,
				Price:        49000, OriginalPrice: 70000, Discount: 30, IsEarlyBird: true,
				Duration:     120,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{TagEarlyBird, "no-code"}),
				StudentCount: 567, Rating: 4.4, ReviewCount: 71,
			}),
			published(14, models.Course{
				Title:        "Digital Marketing for Small Business Owners",
				Description:  "A digital marketing playbook tailored to small business owners. Early-bird limited pricing!",
				Instructor:   "Seo Jiyoon",
				Category:     CategoryMarketing,
				Price:        63000, OriginalPrice: 90000, Discount: 30, IsEarlyBird: true,
				Duration:     160,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{TagEarlyBird, "marketing"}),
				StudentCount: 123, Rating: 4.3, ReviewCount: 15,
			}),
		},
		programming: []models.Course{
			published(15, models.Course{
				Title:        "Conquer Web Development With React",
				Description:  "Modern web application development with React, from components to deployment.",
				Instructor:   "Kang Taewoo",
				Category:     CategoryProgramming,
				Price:        89000,
				Duration:     200,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"react", "web"}),
				StudentCount: 1234, Rating: 4.8, ReviewCount: 198,
			}),
			published(16, models.Course{
				Title:        "Python Data Analysis Master",
				Description:  "Data analysis and visualization with Python you can apply at work immediately.",
				Instructor:   "Kang Taewoo",
				Category:     CategoryProgramming,
				Price:        75000,
				Duration:     180,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"python", "data"}),
				StudentCount: 987, Rating: 4.7, ReviewCount: 154,
			}),
			published(17, models.Course{
				Title:        "JavaScript From Basics to Advanced",
				Description:  "A systematic path through JavaScript, from core concepts to advanced features.",
				Instructor:   "Choi Yuna",
				Category:     CategoryProgramming,
				Price:        65000,
				Duration:     150,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"javascript"}),
				StudentCount: 2156, Rating: 4.6, ReviewCount: 311,
			}),
		},
		design: []models.Course{
			published(18, models.Course{
				Title:        "UI/UX Design With Figma",
				Description:  "Professional UI/UX design in Figma, driven by real client projects.",
				Instructor:   "Lee Dohyun",
				Category:     CategoryDesign,
				Price:        95000,
				Duration:     160,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"figma", "ux"}),
				StudentCount: 756, Rating: 4.8, ReviewCount: 102,
			}),
			published(19, models.Course{
				Title:        "Photoshop: The Complete Course",
				Description:  "Master every Photoshop feature and produce professional image edits.",
				Instructor:   "Lee Dohyun",
				Category:     CategoryDesign,
				Price:        85000,
				Duration:     140,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"photoshop"}),
				StudentCount: 1543, Rating: 4.5, ReviewCount: 201,
			}),
			published(20, models.Course{
				Title:        "Brand Identity Design",
				Description:  "Complete a brand identity: logo, stationery and brand guidelines.",
				Instructor:   "Han Sora",
				Category:     CategoryDesign,
				Price:        78000,
				Duration:     120,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"branding"}),
				StudentCount: 892, Rating: 4.7, ReviewCount: 119,
			}),
		},
		marketing: []models.Course{
			published(21, models.Course{
				Title:        "Building a Digital Marketing Strategy",
				Description:  "Design and execute digital marketing strategies that convert.",
				Instructor:   "Seo Jiyoon",
				Category:     CategoryMarketing,
				Price:        92000,
				Duration:     170,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"strategy"}),
				StudentCount: 1234, Rating: 4.6, ReviewCount: 178,
			}),
			published(22, models.Course{
				Title:        "Google Ads: The Complete Course",
				Description:  "Run effective Google Ads campaigns from account setup to optimization.",
				Instructor:   "Seo Jiyoon",
				Category:     CategoryMarketing,
				Price:        88000,
				Duration:     130,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"ads"}),
				StudentCount: 987, Rating: 4.5, ReviewCount: 133,
			}),
			published(23, models.Course{
				Title:        "Social Media Marketing Strategy",
				Description:  "Marketing on Instagram, Facebook and YouTube that actually moves numbers.",
				Instructor:   "Kim Harin",
				Category:     CategoryMarketing,
				Price:        76000,
				Duration:     110,
				Level:        models.LevelBeginner,
				Tags:         datatypes.NewJSONSlice([]string{"social"}),
				StudentCount: 1456, Rating: 4.4, ReviewCount: 190,
			}),
		},
		business: []models.Course{
			published(24, models.Course{
				Title:        "The Startup Founding Guide",
				Description:  "Every step from idea to incorporated business, with founder case studies.",
				Instructor:   "Park Minsu",
				Category:     CategoryBusiness,
				Price:        120000,
				Duration:     240,
				Level:        models.LevelAdvanced,
				Tags:         datatypes.NewJSONSlice([]string{"startup"}),
				StudentCount: 567, Rating: 4.7, ReviewCount: 83,
			}),
			published(25, models.Course{
				Title:        "The Freelancer Success Strategy",
				Description:  "Win clients, price your work and build sustainable freelance income.",
				Instructor:   "Han Sora",
				Category:     CategoryBusiness,
				Price:        98000,
				Duration:     180,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"freelance"}),
				StudentCount: 789, Rating: 4.6, ReviewCount: 97,
			}),
			published(26, models.Course{
				Title:        "Running an Online Store",
				Description:  "Operate an online store profitably: sourcing, listings, fulfillment and reviews.",
				Instructor:   "Park Minsu",
				Category:     CategoryBusiness,
				Price:        110000,
				Duration:     200,
				Level:        models.LevelIntermediate,
				Tags:         datatypes.NewJSONSlice([]string{"ecommerce"}),
				StudentCount: 634, Rating: 4.5, ReviewCount: 76,
			}),
		},
	}
}
