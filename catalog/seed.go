package catalog

import "github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"

// SeedCategories is the fixed category set. It is never mutated at runtime.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: "electronics", Name: "Electronics", Description: "Latest gadgets and electronic devices"},
		{ID: "clothing", Name: "Clothing", Description: "Fashion items for all seasons"},
		{ID: "home-garden", Name: "Home & Garden", Description: "Products for your home and garden"},
		{ID: "beauty", Name: "Beauty", Description: "Cosmetics and beauty products"},
		{ID: "sports", Name: "Sports & Outdoors", Description: "Equipment and apparel for sports and outdoor activities"},
		{ID: "books", Name: "Books", Description: "Fiction, non-fiction, and educational books"},
		{ID: "toys", Name: "Toys & Games", Description: "Toys and games for all ages"},
		{ID: "food", Name: "Food & Beverages", Description: "Delicious food and drink items"},
	}
}

// SeedProducts is the default catalog used when no database is configured or
// the products table is empty.
func SeedProducts() []models.Product {
	return []models.Product{
		// Electronics
		{ID: "p1", Name: "Wireless Headphones", Description: "Premium noise-canceling wireless headphones with 20-hour battery life", Price: 149.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"headphones", "wireless", "audio", "electronics"}},
		{ID: "p2", Name: "Smart Watch", Description: "Water-resistant smartwatch with health tracking and notification features", Price: 199.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1546868871-7041f2a55e12?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"smartwatch", "watch", "wearable", "electronics"}},
		{ID: "p3", Name: "4K Smart TV", Description: "55-inch 4K Smart TV with HDR and built-in streaming apps", Price: 499.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1593784991095-a205069470b6?q=80&w=400&auto=format&fit=crop", InStock: false, Tags: []string{"tv", "television", "smart tv", "electronics"}},
		{ID: "p28", Name: "Bluetooth Speaker", Description: "Portable waterproof Bluetooth speaker with 360° sound and 12-hour battery life", Price: 79.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"speaker", "bluetooth", "audio", "portable", "electronics"}},
		{ID: "p29", Name: "Digital Camera", Description: "24.2MP digital camera with 4K video recording and interchangeable lenses", Price: 649.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"camera", "digital", "photography", "electronics"}},
		{ID: "p30", Name: "Gaming Console", Description: "Next-gen gaming console with 1TB storage, 4K gaming, and streaming capabilities", Price: 499.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?q=80&w=400&auto=format&fit=crop", InStock: false, Tags: []string{"gaming", "console", "video games", "electronics"}},
		{ID: "p31", Name: "Wireless Earbuds", Description: "True wireless earbuds with noise isolation and touch controls", Price: 89.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1606220588913-b3aacb4d2f37?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"earbuds", "wireless", "audio", "electronics"}},
		{ID: "p32", Name: "Laptop", Description: "Ultra-thin laptop with 16GB RAM, 512GB SSD, and dedicated graphics", Price: 1299.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"laptop", "computer", "notebook", "electronics"}},
		{ID: "p33", Name: "Tablet", Description: "10.2-inch tablet with 64GB storage, Wi-Fi, and all-day battery life", Price: 329.99, Category: "electronics", Image: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"tablet", "ipad", "portable", "electronics"}},

		// Clothing
		{ID: "p4", Name: "Men's Casual Shirt", Description: "100% cotton casual shirt for men, available in multiple colors", Price: 39.99, Category: "clothing", Image: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"shirt", "men", "casual", "clothing"}},
		{ID: "p5", Name: "Women's Summer Dress", Description: "Lightweight summer dress with floral pattern", Price: 59.99, Category: "clothing", Image: "https://images.unsplash.com/photo-1623119319146-a3d9348da3d7?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"dress", "women", "summer", "clothing"}},
		{ID: "p34", Name: "Winter Jacket", Description: "Water-resistant insulated jacket for cold weather protection", Price: 129.99, Category: "clothing", Image: "https://images.unsplash.com/photo-1539533113208-f6df8cc8b543?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"jacket", "winter", "outerwear", "clothing"}},
		{ID: "p35", Name: "Running Shoes", Description: "Lightweight running shoes with responsive cushioning", Price: 89.99, Category: "clothing", Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"shoes", "running", "footwear", "clothing"}},
		{ID: "p36", Name: "Denim Jeans", Description: "Classic straight-fit denim jeans with stretch comfort", Price: 49.99, Category: "clothing", Image: "https://images.unsplash.com/photo-1604176354204-9268737828e4?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"jeans", "denim", "pants", "clothing"}},
		{ID: "p37", Name: "Leather Boots", Description: "Genuine leather boots with water-resistant finish", Price: 149.99, Category: "clothing", Image: "https://images.unsplash.com/photo-1520219306100-ec69c7d8c72d?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"boots", "leather", "footwear", "clothing"}},
		{ID: "p38", Name: "Wool Sweater", Description: "Soft merino wool sweater for warmth and comfort", Price: 69.99, Category: "clothing", Image: "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"sweater", "wool", "knitwear", "clothing"}},

		// Home & Garden
		{ID: "p6", Name: "Indoor Plants Set", Description: "Set of 3 easy-to-maintain indoor plants with decorative pots", Price: 49.99, Category: "home-garden", Image: "https://images.unsplash.com/photo-1545241047-6083a3684587?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"plants", "indoor", "home decor", "garden"}},
		{ID: "p8", Name: "Kitchen Blender", Description: "High-power blender for smoothies and food processing", Price: 89.99, Category: "home-garden", Image: "https://images.unsplash.com/photo-1619067221366-56722796695f?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"blender", "kitchen", "appliance", "home"}},
		{ID: "p39", Name: "Coffee Maker", Description: "Programmable coffee maker with thermal carafe, brews up to 12 cups", Price: 79.99, Category: "home-garden", Image: "https://images.unsplash.com/photo-1517668698030-aaa159dc9bb1?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"coffee", "kitchen", "appliance", "home"}},
		{ID: "p40", Name: "Scented Candles Set", Description: "Set of 4 long-lasting scented candles in decorative jars", Price: 34.99, Category: "home-garden", Image: "https://images.unsplash.com/photo-1603006905003-be475563bc59?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"candles", "home decor", "scented", "home"}},
		{ID: "p41", Name: "Adjustable Desk Lamp", Description: "Modern LED desk lamp with adjustable brightness and color temperature", Price: 45.99, Category: "home-garden", Image: "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"lamp", "lighting", "desk", "home"}},
		{ID: "p42", Name: "Throw Pillow Covers", Description: "Set of 4 decorative throw pillow covers with modern patterns", Price: 29.99, Category: "home-garden", Image: "https://images.unsplash.com/photo-1588844220990-fd9e475e7f0e?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"pillow", "covers", "home decor", "home"}},

		// Beauty
		{ID: "p7", Name: "Skincare Set", Description: "Complete skincare routine set with cleanser, toner, and moisturizer", Price: 79.99, Category: "beauty", Image: "https://images.unsplash.com/photo-1556228852-6d35a585d566?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"skincare", "beauty", "cosmetics"}},
		{ID: "p43", Name: "Makeup Palette", Description: "Professional eyeshadow palette with 18 highly pigmented colors", Price: 42.99, Category: "beauty", Image: "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"makeup", "eyeshadow", "palette", "beauty"}},
		{ID: "p44", Name: "Hair Styling Kit", Description: "Complete hair styling kit with dryer, straightener, and curling iron", Price: 119.99, Category: "beauty", Image: "https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"hair", "styling", "beauty", "appliance"}},
		{ID: "p45", Name: "Perfume", Description: "Elegant fragrance with notes of jasmine, rose, and sandalwood", Price: 64.99, Category: "beauty", Image: "https://images.unsplash.com/photo-1594035910387-fea47794261f?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"perfume", "fragrance", "beauty"}},

		// Sports & Outdoors
		{ID: "p46", Name: "Yoga Mat", Description: "Non-slip yoga mat with alignment markings and carrying strap", Price: 34.99, Category: "sports", Image: "https://images.unsplash.com/photo-1605296867724-fa87a8ef53fd?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"yoga", "fitness", "mat", "exercise", "sports"}},
		{ID: "p47", Name: "Camping Tent", Description: "Waterproof 4-person camping tent, easy setup in under 5 minutes", Price: 129.99, Category: "sports", Image: "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"camping", "tent", "outdoor", "sports"}},
		{ID: "p48", Name: "Basketball", Description: "Official size and weight basketball with superior grip", Price: 29.99, Category: "sports", Image: "https://images.unsplash.com/photo-1519861531473-9200262188bf?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"basketball", "ball", "sports"}},
		{ID: "p49", Name: "Fitness Tracker", Description: "Waterproof fitness tracker with heart rate monitoring and GPS", Price: 89.99, Category: "sports", Image: "https://images.unsplash.com/photo-1575311373937-040b8e3fd59f?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"fitness", "tracker", "wearable", "sports"}},

		// Books
		{ID: "p50", Name: "Fiction Bestseller", Description: "Award-winning fiction novel that topped the bestseller charts", Price: 24.99, Category: "books", Image: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"book", "fiction", "novel", "reading"}},
		{ID: "p51", Name: "Cookbook", Description: "Collection of 100 easy and delicious recipes for everyday cooking", Price: 32.99, Category: "books", Image: "https://images.unsplash.com/photo-1589998059171-988d887df646?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"book", "cookbook", "recipes", "cooking"}},
		{ID: "p52", Name: "Self-Help Book", Description: "Bestselling self-improvement book for personal growth and success", Price: 19.99, Category: "books", Image: "https://images.unsplash.com/photo-1541963463532-d68292c34b19?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"book", "self-help", "motivational", "reading"}},

		// Toys & Games
		{ID: "p53", Name: "Board Game", Description: "Strategic family board game for 2-6 players, ages 8 and up", Price: 34.99, Category: "toys", Image: "https://images.unsplash.com/photo-1610890716171-6b1bb98ffd09?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"game", "board game", "family", "toys"}},
		{ID: "p54", Name: "Remote Control Car", Description: "High-speed remote control car with 4WD and long battery life", Price: 49.99, Category: "toys", Image: "https://images.unsplash.com/photo-1594787318286-3d835c1d207f?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"car", "remote control", "toys"}},
		{ID: "p55", Name: "Building Blocks Set", Description: "Creative building blocks set with 500+ pieces for endless possibilities", Price: 39.99, Category: "toys", Image: "https://images.unsplash.com/photo-1587654780291-39c9404d746b?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"blocks", "building", "creative", "toys"}},

		// Food & Beverages
		{ID: "p56", Name: "Gourmet Coffee Beans", Description: "Premium single-origin coffee beans, medium roast, 1lb bag", Price: 18.99, Category: "food", Image: "https://images.unsplash.com/photo-1611854779393-1b2da9d400fe?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"coffee", "beans", "gourmet", "food"}},
		{ID: "p57", Name: "Chocolate Gift Box", Description: "Luxury assorted chocolate gift box with 24 handcrafted pieces", Price: 29.99, Category: "food", Image: "https://images.unsplash.com/photo-1549007994-cb92caebd54b?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"chocolate", "gift", "sweets", "food"}},
		{ID: "p58", Name: "Specialty Tea Set", Description: "Collection of 6 premium loose leaf teas from around the world", Price: 24.99, Category: "food", Image: "https://images.unsplash.com/photo-1564890369478-c89ca6d9cde9?q=80&w=400&auto=format&fit=crop", InStock: true, Tags: []string{"tea", "loose leaf", "beverage", "food"}},
	}
}
