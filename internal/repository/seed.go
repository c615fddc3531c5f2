package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rdevrajsinh/totalenc/internal/domain"
)

// Seeder is the subset of Store needed to load the demo dataset.
type Seeder interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error)
	CreateService(ctx context.Context, s domain.NewService) (*domain.Service, error)
	CreateProduct(ctx context.Context, p domain.NewProduct) (*domain.Product, error)
	CreateBlogPost(ctx context.Context, p domain.NewBlogPost) (*domain.BlogPost, error)
}

// SeedIfEmpty loads the demo dataset when the store has no users yet. It
// reports whether seeding ran.
func SeedIfEmpty(ctx context.Context, s Seeder) (bool, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("check existing users: %w", err)
	}
	if len(users) > 0 {
		return false, nil
	}
	return true, Seed(ctx, s)
}

// Seed loads the admin user, three main services with three children each,
// four products and three published blog posts.
func Seed(ctx context.Context, s Seeder) error {
	if _, err := s.CreateUser(ctx, domain.NewUser{Username: "admin", Password: "admin123"}); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	// Main services take the first ids, children follow grouped by parent.
	groups := seedServices()
	parents := make([]int64, len(groups))
	for i, group := range groups {
		parent, err := s.CreateService(ctx, group.main)
		if err != nil {
			return fmt.Errorf("seed service %s: %w", group.main.Slug, err)
		}
		parents[i] = parent.ID
	}
	for i, group := range groups {
		for _, child := range group.children {
			parentID := parents[i]
			child.ParentID = &parentID
			if _, err := s.CreateService(ctx, child); err != nil {
				return fmt.Errorf("seed service %s: %w", child.Slug, err)
			}
		}
	}

	for _, p := range seedProducts() {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}

	for _, p := range seedBlogPosts() {
		if _, err := s.CreateBlogPost(ctx, p); err != nil {
			return fmt.Errorf("seed blog post %s: %w", p.Slug, err)
		}
	}

	return nil
}

type serviceGroup struct {
	main     domain.NewService
	children []domain.NewService
}

func ptr[T any](v T) *T { return &v }

func seedServices() []serviceGroup {
	return []serviceGroup{
		{
			main: domain.NewService{
				Name:            "Standard Enclosures",
				Slug:            "standard-enclosures",
				Description:     "Our range of standard enclosures provide robust and reliable solutions for various industrial applications.",
				FullDescription: ptr("<p>Total Enclosures offers a comprehensive range of standard enclosures designed to meet diverse industrial needs. Our catalog includes various materials, sizes, and protection ratings to ensure you find the perfect solution for your application.</p><p>All our standard enclosures are manufactured to the highest quality standards and undergo rigorous testing to ensure reliability and durability in demanding environments.</p>"),
				Image:           ptr("/images/services/standard-enclosures.jpg"),
				Featured:        ptr(true),
				Order:           ptr(1),
				MetaTitle:       ptr("Standard Industrial Enclosures | Total Enclosures"),
				MetaDescription: ptr("Browse our comprehensive range of high-quality standard industrial enclosures including metal, stainless steel, and plastic options for various applications."),
			},
			children: []domain.NewService{
				{
					Name:            "Metal Enclosures",
					Slug:            "metal-enclosures",
					Description:     "Durable steel enclosures designed for industrial environments where strength and protection are essential.",
					FullDescription: ptr("<p>Our metal enclosures provide superior protection for your equipment in demanding industrial environments. Manufactured from high-quality steel, these enclosures offer excellent durability, electromagnetic shielding, and resistance to impact.</p><p>Available in various sizes and configurations, our metal enclosures can be customized with different mounting options, access points, and surface finishes to meet your specific requirements.</p>"),
					Image:           ptr("/images/services/metal-enclosures.jpg"),
					Order:           ptr(1),
					Features: []string{
						"Robust steel construction",
						"Various IP protection ratings available",
						"Optional powder coating for enhanced durability",
						"Multiple mounting options",
						"Available with different locking mechanisms",
					},
					Benefits: []string{
						"Superior protection against physical impact",
						"Excellent EMI/RFI shielding capabilities",
						"Long service life in industrial environments",
						"Cost-effective solution for harsh conditions",
						"Versatile mounting and installation options",
					},
				},
				{
					Name:            "Stainless Steel Enclosures",
					Slug:            "stainless-steel-enclosures",
					Description:     "Corrosion-resistant enclosures ideal for food processing, pharmaceutical, and outdoor applications.",
					FullDescription: ptr("<p>Our stainless steel enclosures provide exceptional corrosion resistance and hygienic properties, making them ideal for food processing, pharmaceutical, chemical, and outdoor applications. Manufactured from high-grade 304 or 316L stainless steel, these enclosures maintain their integrity even in the most challenging environments.</p><p>The smooth, easy-to-clean surfaces make these enclosures perfect for applications where regular sanitation is required, while their aesthetic appearance makes them suitable for visible installations.</p>"),
					Image:           ptr("/images/services/stainless-steel-enclosures.jpg"),
					Order:           ptr(2),
					Features: []string{
						"304 or 316L stainless steel construction",
						"Seamless welded design options",
						"High IP rating for water and dust protection",
						"Brushed or polished finish options",
						"Food-grade silicone gaskets available",
					},
					Benefits: []string{
						"Exceptional corrosion resistance",
						"Suitable for washdown environments",
						"Meets hygiene requirements for food and pharmaceutical applications",
						"Aesthetic appearance for visible installations",
						"Extended service life in harsh environments",
					},
				},
				{
					Name:            "Plastic Enclosures",
					Slug:            "plastic-enclosures",
					Description:     "Lightweight, non-conductive enclosures perfect for electrical applications and corrosive environments.",
					FullDescription: ptr("<p>Our plastic enclosures offer lightweight, non-conductive solutions ideal for electrical applications and corrosive environments. Manufactured from high-quality ABS, polycarbonate, or fiberglass-reinforced polyester, these enclosures provide excellent insulation properties while resisting chemical damage.</p><p>Their inherent non-corrosive nature makes them perfect for outdoor installations, wastewater treatment facilities, and chemical processing plants. The transparent lid options allow for easy visual inspection without opening the enclosure.</p>"),
					Image:           ptr("/images/services/plastic-enclosures.jpg"),
					Order:           ptr(3),
					Features: []string{
						"UV-resistant materials for outdoor use",
						"Non-conductive for electrical safety",
						"Chemical and corrosion resistant",
						"Transparent lid options available",
						"Lightweight for easy installation",
					},
					Benefits: []string{
						"Excellent electrical insulation properties",
						"No risk of corrosion in harsh environments",
						"Lower installation costs due to light weight",
						"UV-stabilized for extended outdoor service life",
						"Easy modification without specialized tools",
					},
				},
			},
		},
		{
			main: domain.NewService{
				Name:            "Custom Solutions",
				Slug:            "custom-solutions",
				Description:     "We design and manufacture bespoke enclosure solutions tailored to your specific requirements and specifications.",
				FullDescription: ptr("<p>When standard enclosures don't meet your unique requirements, our custom solutions provide the perfect answer. We work closely with you to design and manufacture enclosures that precisely match your specifications.</p><p>Our engineering team combines innovative design with advanced manufacturing techniques to create custom enclosures that optimize functionality, aesthetics, and cost-effectiveness.</p>"),
				Image:           ptr("/images/services/custom-solutions.jpg"),
				Featured:        ptr(true),
				Order:           ptr(2),
				MetaTitle:       ptr("Custom Enclosure Solutions | Total Enclosures"),
				MetaDescription: ptr("Get custom-designed industrial enclosures tailored to your exact specifications. Our engineering team delivers bespoke solutions for unique applications."),
			},
			children: []domain.NewService{
				{
					Name:            "Custom Design Services",
					Slug:            "custom-design-services",
					Description:     "Expert engineering and design services to create the perfect enclosure for your unique requirements.",
					FullDescription: ptr("<p>Our custom design services combine engineering expertise with innovative thinking to create enclosures that perfectly match your unique requirements. We begin with a thorough consultation to understand your needs, constraints, and objectives, then develop detailed designs that optimize functionality, aesthetics, and cost-effectiveness.</p><p>Our engineers utilize advanced CAD software to create precise 3D models and detailed technical drawings, allowing you to visualize and approve the design before manufacturing begins. We consider all aspects of your application, including environmental conditions, access requirements, thermal management, and regulatory compliance.</p>"),
					Image:           ptr("/images/services/custom-design.jpg"),
					Order:           ptr(1),
					Features: []string{
						"Comprehensive consultation and requirements analysis",
						"Advanced 3D CAD design and modeling",
						"Thermal and structural simulation capabilities",
						"Prototype development and testing",
						"Complete documentation and manufacturing drawings",
					},
					Benefits: []string{
						"Enclosures precisely tailored to your application",
						"Optimization of space, weight, and cost",
						"Validation of performance before manufacturing",
						"Seamless integration with existing systems",
						"Solutions that address unique environmental challenges",
					},
				},
				{
					Name:            "Specialized Materials",
					Slug:            "specialized-materials",
					Description:     "Enclosures manufactured from specialized materials for extreme environments and unique applications.",
					FullDescription: ptr("<p>When standard materials aren't sufficient for your challenging application, our specialized materials service provides solutions that can withstand extreme environments. We work with a wide range of advanced materials including composite materials, high-performance alloys, specialty plastics, and custom laminates.</p><p>Whether you need extreme temperature resistance, exceptional chemical compatibility, specialized shielding properties, or ultra-lightweight construction, our engineering team selects and implements the perfect material solution for your enclosure requirements.</p>"),
					Image:           ptr("/images/services/specialized-materials.jpg"),
					Order:           ptr(2),
					Features: []string{
						"High-temperature resistant alloys",
						"Composite materials for weight reduction",
						"Enhanced EMI/RFI shielding materials",
						"Specialty plastics for chemical resistance",
						"Antimicrobial materials for healthcare applications",
					},
					Benefits: []string{
						"Performance in extreme environmental conditions",
						"Resistance to specific chemicals or contaminants",
						"Extended service life in harsh applications",
						"Weight reduction without compromising strength",
						"Specialized protection for sensitive equipment",
					},
				},
				{
					Name:            "OEM Integration Solutions",
					Slug:            "oem-integration-solutions",
					Description:     "Custom enclosures designed for seamless integration with your products and manufacturing processes.",
					FullDescription: ptr("<p>Our OEM Integration Solutions are specifically designed for manufacturers who need enclosures that seamlessly integrate with their products and production processes. We develop custom enclosure solutions that not only protect your components but also enhance your product's functionality, appearance, and brand identity.</p><p>Working closely with your engineering and production teams, we develop enclosures that optimize assembly efficiency, reduce manufacturing costs, and improve the end-user experience. Whether you need a few hundred or thousands of units, we deliver consistent quality and reliable supply to support your production schedule.</p>"),
					Image:           ptr("/images/services/oem-integration.jpg"),
					Order:           ptr(3),
					Features: []string{
						"Design for Manufacturing (DFM) approach",
						"Custom mounting and assembly features",
						"Integration of your branding elements",
						"Production-friendly design features",
						"Consistent quality across large production runs",
					},
					Benefits: []string{
						"Reduced assembly time and complexity",
						"Enhanced product aesthetics and functionality",
						"Optimized for your production processes",
						"Reliable supply chain for continuous production",
						"Potential cost reduction through design optimization",
					},
				},
			},
		},
		{
			main: domain.NewService{
				Name:            "Modification Services",
				Slug:            "modification-services",
				Description:     "Our comprehensive modification services include cutting, drilling, painting, and customizing existing enclosures.",
				FullDescription: ptr("<p>Our comprehensive modification services transform standard enclosures to meet your specific requirements. Whether you need custom cutouts, special finishes, or additional features, our expert team delivers precise modifications that enhance functionality without compromising integrity.</p><p>We utilize state-of-the-art equipment and techniques to ensure that every modification is completed to exacting standards and tight tolerances.</p>"),
				Image:           ptr("/images/services/modification-services.jpg"),
				Featured:        ptr(true),
				Order:           ptr(3),
				MetaTitle:       ptr("Enclosure Modification Services | Total Enclosures"),
				MetaDescription: ptr("Professional modification services for industrial enclosures. Customize your enclosures with precision cutting, drilling, painting and more."),
			},
			children: []domain.NewService{
				{
					Name:            "CNC Machining",
					Slug:            "cnc-machining",
					Description:     "Precision CNC machining services for accurate cutouts, holes, and complex modifications.",
					FullDescription: ptr("<p>Our precision CNC machining services transform standard enclosures with exact cutouts, holes, and complex modifications to accommodate your specific components. Using advanced CNC technology, we achieve tight tolerances and clean finishes that ensure perfect fit and professional appearance.</p><p>Our capabilities include multi-axis milling, drilling, tapping, and engraving across various materials including steel, aluminum, stainless steel, and plastics. Each modification is programmed from detailed technical drawings or digital files, ensuring precision and repeatability across multiple units.</p>"),
					Image:           ptr("/images/services/cnc-machining.jpg"),
					Order:           ptr(1),
					Features: []string{
						"Precision cutouts for displays, connectors, and controls",
						"Exact hole patterns for mounting equipment",
						"Thread tapping for secure component attachment",
						"Countersunk holes for flush mounting",
						"Custom engraving for identification and branding",
					},
					Benefits: []string{
						"Perfect fit for your components and equipment",
						"Professional appearance with clean edges and precise dimensions",
						"Consistent results across multiple enclosures",
						"Complex modifications that would be difficult to achieve manually",
						"Reduced installation time with pre-modified enclosures",
					},
				},
				{
					Name:            "Surface Finishing",
					Slug:            "surface-finishing",
					Description:     "Professional painting, powder coating, and specialized surface treatments for enclosures.",
					FullDescription: ptr("<p>Our surface finishing services enhance the appearance, durability, and functionality of your enclosures. We offer a comprehensive range of treatments including painting, powder coating, anodizing, plating, and specialty coatings that provide both aesthetic appeal and protective benefits.</p><p>Whether you need a specific color for brand consistency, added corrosion protection, enhanced chemical resistance, or specialized properties like anti-static surfaces, our finishing processes deliver high-quality, long-lasting results that meet industry standards and your exact specifications.</p>"),
					Image:           ptr("/images/services/surface-finishing.jpg"),
					Order:           ptr(2),
					Features: []string{
						"Custom color matching to your specifications",
						"Textured finishes for improved grip and appearance",
						"Chemical-resistant coatings for harsh environments",
						"Anti-static finishes for sensitive electronics",
						"UV-resistant treatments for outdoor applications",
					},
					Benefits: []string{
						"Enhanced aesthetic appearance and brand consistency",
						"Improved corrosion and chemical resistance",
						"Extended service life in challenging environments",
						"Specialized functionality like EMI shielding",
						"Improved cleanliness and maintenance properties",
					},
				},
				{
					Name:            "Thermal Management",
					Slug:            "thermal-management",
					Description:     "Installation of cooling systems, vents, and thermal solutions to maintain optimal internal temperatures.",
					FullDescription: ptr("<p>Our thermal management modifications ensure your sensitive equipment operates at optimal temperatures, preventing overheating and extending component life. We design and implement comprehensive cooling solutions including ventilation systems, fan installations, heat exchangers, air conditioning units, and passive cooling options.</p><p>Each thermal solution is engineered based on heat load calculations, ambient conditions, and equipment specifications to provide efficient temperature control while maintaining appropriate IP protection. Our installations include proper sealing, filtering, and condensation management to ensure reliable operation in various environments.</p>"),
					Image:           ptr("/images/services/thermal-management.jpg"),
					Order:           ptr(3),
					Features: []string{
						"Filtered ventilation systems with appropriate IP protection",
						"Fan installation with temperature controllers",
						"Heat exchanger integration for sealed enclosures",
						"Air conditioning units for high heat loads",
						"Thermal analysis and heat load calculations",
					},
					Benefits: []string{
						"Prevention of equipment overheating and failure",
						"Extended component life through proper temperature control",
						"Maintained environmental protection while allowing cooling",
						"Energy-efficient solutions tailored to actual heat loads",
						"Reduced maintenance and downtime due to thermal issues",
					},
				},
			},
		},
	}
}

func seedProducts() []domain.NewProduct {
	return []domain.NewProduct{
		{
			Name:        "Metal Enclosures",
			Slug:        "metal-enclosures",
			Description: "Durable steel enclosures for industrial applications",
			Image:       ptr("/images/products/metal-enclosures.jpg"),
			Category:    ptr("Enclosures"),
			Featured:    ptr(true),
		},
		{
			Name:        "Stainless Steel Cabinets",
			Slug:        "stainless-steel-cabinets",
			Description: "Corrosion-resistant cabinets for harsh environments",
			Image:       ptr("/images/products/stainless-steel-cabinets.jpg"),
			Category:    ptr("Cabinets"),
			Featured:    ptr(true),
		},
		{
			Name:        "Plastic Enclosures",
			Slug:        "plastic-enclosures",
			Description: "Lightweight and versatile plastic enclosure options",
			Image:       ptr("/images/products/plastic-enclosures.jpg"),
			Category:    ptr("Enclosures"),
			Featured:    ptr(true),
		},
		{
			Name:        "Custom Enclosures",
			Slug:        "custom-enclosures",
			Description: "Bespoke solutions tailored to your specifications",
			Image:       ptr("/images/products/custom-enclosures.jpg"),
			Category:    ptr("Custom"),
			Featured:    ptr(true),
		},
	}
}

func seedBlogPosts() []domain.NewBlogPost {
	published := domain.BlogStatusPublished
	day := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	return []domain.NewBlogPost{
		{
			Title:       "Choosing the Right Enclosure for Your Industrial Application",
			Slug:        "choosing-right-enclosure",
			Content:     "<p>Learn about the key factors to consider when selecting an industrial enclosure for your specific needs and environment.</p><p>When it comes to selecting the right industrial enclosure, several factors must be taken into account to ensure optimal performance and longevity. Here are the key considerations:</p><h2>Environment Considerations</h2><p>The environment where your enclosure will be installed plays a crucial role in determining the appropriate material and IP rating:</p><ul><li>Indoor vs. Outdoor: For outdoor applications, weather-resistant materials and sealing are essential.</li><li>Temperature Extremes: Consider thermal management solutions for enclosures exposed to high or low temperatures.</li><li>Corrosive Environments: Chemical plants or coastal locations may require stainless steel or specially coated enclosures.</li></ul><h2>Size and Accessibility</h2><p>Proper sizing ensures that all components fit comfortably with adequate space for heat dissipation and maintenance:</p><ul><li>Future Expansion: Allow extra space for potential additions.</li><li>Accessibility: Consider how technicians will access the components for maintenance.</li><li>Cable Management: Ensure sufficient space for proper cable routing and organization.</li></ul><p>At Total Enclosures, we offer a wide range of solutions to meet your specific requirements. Contact our team of experts for personalized recommendations.</p>",
			Excerpt:     ptr("Learn about the key factors to consider when selecting an industrial enclosure for your specific needs and environment."),
			Author:      ptr("Admin"),
			Status:      &published,
			PublishDate: day(2023, time.January, 15),
			Images: []string{
				"/images/blog/enclosure-selection.jpg",
			},
			Categories: []string{
				"Industrial Solutions",
				"Best Practices",
			},
			Tags: []string{
				"enclosures",
				"industrial",
				"selection guide",
			},
			MetaTitle:       ptr("How to Choose the Right Industrial Enclosure | Total Enclosures"),
			MetaDescription: ptr("Learn the essential factors to consider when selecting industrial enclosures for your specific application and environment. Expert guidance from Total Enclosures."),
		},
		{
			Title:       "The Benefits of Custom Enclosure Solutions",
			Slug:        "benefits-custom-enclosures",
			Content:     "<p>Discover how custom enclosure solutions can improve efficiency, reduce costs, and address your unique challenges.</p><p>While standard enclosures serve many applications well, custom solutions offer distinct advantages that can transform your operations:</p><h2>Perfect Fit for Your Equipment</h2><p>Custom enclosures are designed specifically for your equipment, ensuring:</p><ul><li>Optimal space utilization</li><li>Precise mounting points for your components</li><li>Integrated cable management tailored to your specific requirements</li></ul><h2>Enhanced Protection</h2><p>Custom solutions can provide targeted protection against specific environmental challenges:</p><ul><li>Specialized sealing for unique environmental conditions</li><li>Custom cooling or heating solutions for optimal temperature control</li><li>Reinforced protection in critical areas</li></ul><h2>Cost Efficiency</h2><p>While custom solutions may have higher upfront costs, they often provide long-term savings through:</p><ul><li>Reduced installation time and complexity</li><li>Minimized maintenance requirements</li><li>Extended equipment lifespan due to optimal protection</li></ul><p>At Total Enclosures, our engineering team works closely with you to develop custom solutions that perfectly match your requirements while maximizing value and performance.</p>",
			Excerpt:     ptr("Discover how custom enclosure solutions can improve efficiency, reduce costs, and address your unique challenges."),
			Author:      ptr("Admin"),
			Status:      &published,
			PublishDate: day(2023, time.February, 20),
			Images: []string{
				"/images/blog/custom-enclosures.jpg",
			},
			Categories: []string{
				"Custom Solutions",
				"Industry Insights",
			},
			Tags: []string{
				"custom enclosures",
				"efficiency",
				"cost reduction",
			},
			MetaTitle:       ptr("Benefits of Custom Industrial Enclosures | Total Enclosures"),
			MetaDescription: ptr("Explore how custom enclosure solutions improve efficiency, reduce costs, and address unique industrial challenges. Expert solutions from Total Enclosures."),
		},
		{
			Title:       "Industry Trends: The Future of Industrial Enclosures",
			Slug:        "industry-trends-future",
			Content:     "<p>Stay ahead of the curve with our insights into the emerging trends and innovations in industrial enclosure technology.</p><p>The industrial enclosure sector is evolving rapidly, with several key trends shaping the future of the industry:</p><h2>Smart Enclosures</h2><p>The integration of IoT capabilities is transforming traditional enclosures into intelligent systems:</p><ul><li>Remote monitoring of environmental conditions inside enclosures</li><li>Predictive maintenance alerts based on real-time data</li><li>Automated climate control systems that respond to changing conditions</li></ul><h2>Sustainable Materials and Manufacturing</h2><p>Environmental considerations are driving innovations in materials and processes:</p><ul><li>Recycled and recyclable materials for enclosure construction</li><li>Energy-efficient manufacturing processes</li><li>Designs that facilitate end-of-life recycling</li></ul><h2>Modular and Scalable Designs</h2><p>Flexibility is becoming increasingly important in industrial applications:</p><ul><li>Standardized connectivity between modular components</li><li>Easily expandable systems that grow with your needs</li><li>Configurable internal arrangements that adapt to changing requirements</li></ul><p>At Total Enclosures, we continuously invest in research and development to incorporate these emerging trends into our product offerings, ensuring that our customers benefit from the latest innovations in enclosure technology.</p>",
			Excerpt:     ptr("Stay ahead of the curve with our insights into the emerging trends and innovations in industrial enclosure technology."),
			Author:      ptr("Admin"),
			Status:      &published,
			PublishDate: day(2023, time.March, 8),
			Images: []string{
				"/images/blog/future-trends.jpg",
			},
			Categories: []string{
				"Industry Trends",
				"Innovation",
			},
			Tags: []string{
				"trends",
				"innovation",
				"future technology",
				"smart enclosures",
			},
			MetaTitle:       ptr("Future Trends in Industrial Enclosure Technology | Total Enclosures"),
			MetaDescription: ptr("Discover emerging trends and innovations in industrial enclosure technology, including smart systems, sustainable materials, and modular designs. Insights from Total Enclosures."),
		},
	}
}
