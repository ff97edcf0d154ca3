package catalog

import "smart_travel/internal/domain"

func place(name, rating string, cat domain.Category, desc string) domain.Place {
	return domain.Place{Name: name, Rating: rating, Category: cat, Description: desc}
}

func builtinRegions() []domain.Region {
	return []domain.Region{
		{Key: "mumbai", Places: []domain.Place{
			place("Gateway of India", "4.7", domain.Heritage,
				"An iconic arch monument built during British rule, overlooking the Arabian Sea. The perfect starting point for any Mumbai visit."),
			place("Marine Drive", "4.8", domain.Scenic,
				"A spectacular 3.6 km promenade along the sea known as the \"Queen's Necklace\" for its shimmering lights at night."),
			place("Elephanta Caves", "4.5", domain.Heritage,
				"UNESCO World Heritage Site - ancient rock-cut caves housing magnificent sculptures of Lord Shiva, accessible by ferry from Gateway."),
			place("Chhatrapati Shivaji Maharaj Terminus", "4.6", domain.Heritage,
				"A stunning UNESCO-listed Victorian Gothic railway station, one of the finest examples of Victorian architecture in India."),
			place("Juhu Beach", "4.3", domain.Coastal,
				"Mumbai's most famous beach, loved for its vibrant street food, sunset views, and the bollywood celebrity atmosphere."),
			place("Siddhivinayak Temple", "4.8", domain.Spiritual,
				"One of the most revered Ganesh temples in India, attracting thousands of devotees daily including celebrities and politicians."),
			place("Dharavi", "4.2", domain.Cultural,
				"Asia's largest informal settlement turned into a thriving entrepreneurial hub. An eye-opening cultural and social experience."),
			place("Bandra-Worli Sea Link", "4.5", domain.Scenic,
				"A modern engineering marvel - an 8-lane cable-stayed bridge offering breathtaking views of the Mumbai skyline and the sea."),
		}},
		{Key: "delhi", Places: []domain.Place{
			place("Red Fort (Lal Qila)", "4.6", domain.Heritage,
				"A UNESCO World Heritage Site and symbol of India's independence. The Mughal fortress where PM delivers Independence Day speeches."),
			place("Qutub Minar", "4.7", domain.Heritage,
				"The world's tallest brick minaret at 73 metres, built in 1193. A stunning example of Indo-Islamic architecture."),
			place("India Gate", "4.6", domain.Heritage,
				"A war memorial dedicated to 82,000 Indian soldiers. The eternal flame (Amar Jawan Jyoti) burns here 24/7, surrounded by lush lawns."),
			place("Humayun's Tomb", "4.7", domain.Heritage,
				"A breathtaking UNESCO Site that inspired the design of the Taj Mahal. The garden tomb is a masterpiece of Mughal architecture."),
			place("Lotus Temple", "4.5", domain.Spiritual,
				"A stunning Bahá'í House of Worship shaped like a blooming lotus flower - open to people of all religions for prayer and meditation."),
			place("Chandni Chowk", "4.3", domain.Cultural,
				"One of the oldest and busiest markets in India. A sensory explosion of spices, street food, textiles and 17th century architecture."),
			place("Akshardham Temple", "4.8", domain.Spiritual,
				"A monumental Hindu temple complex featuring intricate stone carvings, boat rides, and a spectacular water-and-light show."),
			place("Jama Masjid", "4.5", domain.Spiritual,
				"India's largest mosque, built by Shah Jahan, accommodating 25,000 worshippers. Climb the minaret for panoramic Old Delhi views."),
		}},
		{Key: "jaipur", Places: []domain.Place{
			place("Amber Fort", "4.8", domain.Heritage,
				"A magnificent hilltop fort with stunning Hindu-Mughal architecture. Ride an elephant up or walk through the imposing Suraj Pol gate."),
			place("Hawa Mahal (Palace of Winds)", "4.6", domain.Heritage,
				"The iconic 5-storey pink sandstone palace with 953 small windows, allowing royal ladies to observe street life unseen."),
			place("City Palace Jaipur", "4.7", domain.Heritage,
				"The royal residence of the Maharaja of Jaipur, featuring museums, courtyards, and the stunning Chandra Mahal complex."),
			place("Jantar Mantar", "4.4", domain.Heritage,
				"A UNESCO-listed 18th century astronomical observatory with world's largest stone sundial, still accurate to 2 seconds."),
			place("Nahargarh Fort", "4.5", domain.Heritage,
				"Built in 1734 on the rugged Aravalli Hills, offering panoramic views of Jaipur city. Stunning sunset viewpoint."),
			place("Jal Mahal (Water Palace)", "4.6", domain.Scenic,
				"A fairy-tale palace appearing to float in the middle of Man Sagar Lake - best enjoyed from the lakeside promenade at dusk."),
			place("Jaipur Bazaars (Johari Bazaar)", "4.4", domain.Cultural,
				"Vibrant colored markets famous for gemstones, tie-dye fabrics, blue pottery, and traditional Rajasthani jewellery."),
			place("Albert Hall Museum", "4.3", domain.Cultural,
				"Rajasthan's oldest museum, a beautiful Indo-Saracenic building housing artifacts, Egyptian mummies, and royal collections."),
		}},
		{Key: "goa", Places: []domain.Place{
			place("Baga Beach", "4.4", domain.Coastal,
				"Goa's most famous beach with vibrant shacks, water sports, and incredible nightlife. Perfect for first-time visitors."),
			place("Basilica of Bom Jesus", "4.7", domain.Spiritual,
				"A UNESCO World Heritage church housing the mortal remains of St. Francis Xavier. Baroque architecture at its finest."),
			place("Dudhsagar Waterfalls", "4.8", domain.Nature,
				"India's tallest waterfall at 310 metres, surrounded by thick jungle. The jeep safari through dense forest adds to the adventure."),
			place("Anjuna Flea Market", "4.2", domain.Cultural,
				"Goa's legendary weekly market every Wednesday, selling handicrafts, clothes, souvenirs, spices, and unique hippie-era goods."),
			place("Fort Aguada", "4.5", domain.Heritage,
				"A well-preserved 17th-century Portuguese fort guarding the confluence of the Mandovi river and the sea. Lighthouse included."),
			place("Calangute Beach", "4.3", domain.Coastal,
				"Known as the \"Queen of Beaches\", it's the largest and most popular beach in Goa, with great dining and watersports."),
			place("Old Goa Churches", "4.6", domain.Heritage,
				"A UNESCO district of 16th-17th century churches including Se Cathedral, one of the largest in Asia, reflecting Portuguese heritage."),
			place("Palolem Beach", "4.7", domain.Coastal,
				"The most beautiful crescent-shaped beach in South Goa - calm, picturesque waters perfect for kayaking and swimming."),
		}},
		{Key: "varanasi", Places: []domain.Place{
			place("Dashashwamedh Ghat", "4.8", domain.Spiritual,
				"The main and most spectacular ghat on the Ganges where the mesmerizing Ganga Aarti ceremony takes place every evening."),
			place("Kashi Vishwanath Temple", "4.9", domain.Spiritual,
				"One of the most sacred Hindu temples, dedicated to Lord Shiva. The golden spire is visible across the Ganga ghats."),
			place("Assi Ghat", "4.6", domain.Spiritual,
				"The southernmost ghat, famous for the morning aarti and yoga sessions at sunrise. A peaceful and photogenic spot."),
			place("Sarnath", "4.7", domain.Spiritual,
				"Where Lord Buddha gave his first sermon after enlightenment. Features the Dhamek Stupa and an outstanding Archaeological Museum."),
			place("Manikarnika Ghat", "4.4", domain.Spiritual,
				"The sacred cremation ghat that burns 24/7. Witnessing this is a profound philosophical experience about life and death."),
			place("Banaras Hindu University", "4.5", domain.Cultural,
				"One of Asia's largest universities with a stunning campus housing the New Vishwanath Temple and an art gallery."),
			place("Ramnagar Fort", "4.3", domain.Heritage,
				"A 18th century fort and palace of the Maharaja of Varanasi on the eastern bank of the Ganga, now a fascinating museum."),
			place("Boat Ride on the Ganges", "4.9", domain.Scenic,
				"Watching the ghats and morning rituals from a wooden boat at sunrise is the quintessential Varanasi experience."),
		}},
		{Key: "agra", Places: []domain.Place{
			place("Taj Mahal", "4.9", domain.Heritage,
				"The world's most iconic monument of love - a UNESCO Wonder of the World built by Shah Jahan for his beloved Mumtaz Mahal."),
			place("Agra Fort", "4.7", domain.Heritage,
				"A magnificent UNESCO World Heritage red sandstone fort, home to Mughal emperors. Contains beautiful palaces and the Khas Mahal."),
			place("Fatehpur Sikri", "4.6", domain.Heritage,
				"A ghost city built by Akbar in 1571, abandoned only 14 years later. Buland Darwaza is the largest gateway in the world."),
			place("Mehtab Bagh", "4.5", domain.Scenic,
				"A riverside garden complex directly across from the Taj Mahal offering the best sunset views without the crowds."),
			place("Itimad-ud-Daulah (Baby Taj)", "4.4", domain.Heritage,
				"A delicate Mughal mausoleum often called the \"Baby Taj\", built entirely in white marble with intricate inlay work."),
			place("Akbar's Tomb (Sikandra)", "4.3", domain.Heritage,
				"The mausoleum of Emperor Akbar, built in Indo-Islamic style. Large complex with beautiful gardens and deer roaming freely."),
			place("Kinari Bazaar", "4.2", domain.Cultural,
				"Agra's famous market for marble inlay items, leather goods, zardozi embroidery, and the world-renowned Agra petha sweets."),
			place("Chini ka Rauza", "4.1", domain.Heritage,
				"A unique riverside mausoleum covered entirely in Persian-style glazed tile work - a hidden gem few tourists visit."),
		}},
		{Key: "kolkata", Places: []domain.Place{
			place("Victoria Memorial", "4.7", domain.Heritage,
				"A grand white marble monument built in memory of Queen Victoria, now a museum. The gardens and surrounding lawns are stunning."),
			place("Howrah Bridge", "4.6", domain.Heritage,
				"The iconic cantilever bridge over the Hooghly river - one of the world's busiest bridges with 100,000 vehicles daily."),
			place("Dakshineswar Kali Temple", "4.8", domain.Spiritual,
				"One of the most famous Kali temples in India where Ramakrishna Paramahansa had his spiritual visions. Architectural masterpiece."),
			place("Indian Museum", "4.5", domain.Cultural,
				"The oldest and largest museum in India (1814), housing a treasure trove of natural history, art, archaeology, and anthropology."),
			place("Park Street Food Trail", "4.3", domain.Cultural,
				"Kolkata's famous food street with legendary restaurants, Kathi roll shops, mishti doi, and the Bengali culinary experience."),
			place("Marble Palace", "4.4", domain.Heritage,
				"A 19th century mansion with an eclectic collection of European marbles, paintings, sculptures, and exotic birds in its courtyard."),
			place("New Market (Hogg Market)", "4.2", domain.Cultural,
				"A massive Victorian-era market (1874) with over 2000 shops selling everything from spices and sarees to electronics."),
			place("Belur Math", "4.7", domain.Spiritual,
				"The headquarters of the Ramakrishna Math, known for its unique architecture that blends Hindu, Islamic and Christian elements."),
		}},
		{Key: "bangalore", Places: []domain.Place{
			place("Lalbagh Botanical Garden", "4.7", domain.Nature,
				"A stunning 240-acre botanical garden housing India's largest collection of tropical plants and a famous glasshouse built on Crystal Palace."),
			place("Cubbon Park", "4.5", domain.Nature,
				"A century-old public park spread over 300 acres in the heart of the city - green lungs of Bangalore with heritage buildings."),
			place("Bangalore Palace", "4.3", domain.Heritage,
				"Inspired by Windsor Castle, this 1887 palace features Tudor-style architecture with wood carvings and paintings of royal life."),
			place("ISKCON Temple Bangalore", "4.8", domain.Spiritual,
				"One of the largest ISKCON temples in the world, built in stunning Dravidian and Rajasthani styles. Breathtaking interior."),
			place("Vidhana Soudha", "4.6", domain.Heritage,
				"The grand granite state legislature building - a magnificent example of Neo-Dravidian architecture, most beautiful when lit at night."),
			place("Tipu Sultan's Summer Palace", "4.3", domain.Heritage,
				"An exquisite 18th century palace of Tipu Sultan made entirely of teak wood with intricate carvings and paintings."),
			place("UB City Mall & Brigade Road", "4.4", domain.Cultural,
				"Bangalore's luxury shopping and dining hub with over 100 international brands, fine dining, art installations and sky bars."),
			place("Nandi Hills", "4.7", domain.Nature,
				"A scenic hill station 60 km from Bangalore, famous for incredible sunrise views above the clouds and ancient Nandi Temple."),
		}},
		{Key: "hyderabad", Places: []domain.Place{
			place("Charminar", "4.7", domain.Heritage,
				"The iconic 16th century monument with four grand arches and minarets - the undisputed symbol of Hyderabad's rich Nizami heritage."),
			place("Golconda Fort", "4.6", domain.Heritage,
				"A majestic Qutb Shahi dynasty fort famed for its acoustic system, water supply engineering and the stunning sound-light show."),
			place("Ramoji Film City", "4.5", domain.Cultural,
				"The world's largest film studio complex (Guinness Record), with over 2500 acres of themed sets, gardens and amusements."),
			place("Hussain Sagar Lake", "4.4", domain.Scenic,
				"A large heart-shaped lake with a giant Buddha statue on a rock island in the center. Boat rides available all day."),
			place("Laad Bazaar (Choodi Bazaar)", "4.3", domain.Cultural,
				"The famous bangle market near Charminar - a kaleidoscope of colorful bangles, pearls, and traditional Hyderabadi jewelry."),
			place("Qutb Shahi Tombs", "4.5", domain.Heritage,
				"The magnificent necropolis of the Qutb Shahi rulers - seven grand domed tombs set in a Persian-style garden."),
			place("Salar Jung Museum", "4.6", domain.Cultural,
				"One of India's largest museums, housing Salar Jung III's personal collection of 43,000 artifacts from around the world."),
			place("Birla Mandir", "4.6", domain.Spiritual,
				"A pristine white marble Hindu temple on a hilltop, offering panoramic views of Hussain Sagar Lake and the city."),
		}},
		{Key: "chennai", Places: []domain.Place{
			place("Marina Beach", "4.5", domain.Coastal,
				"The world's second longest urban beach at 13 km. An iconic Chennai experience, especially at sunrise with street food vendors."),
			place("Kapaleeshwarar Temple", "4.8", domain.Spiritual,
				"A magnificent 7th century Dravidian temple dedicated to Lord Shiva in Mylapore, with a colorful gopuram towering 37 metres."),
			place("Fort St. George", "4.4", domain.Heritage,
				"The first English fortress in India (1644), now housing the Tamil Nadu Assembly and a museum with rare colonial artifacts."),
			place("San Thome Basilica", "4.6", domain.Spiritual,
				"A neo-Gothic church built over the tomb of St. Thomas the Apostle, one of only three churches in the world built over an apostle's tomb."),
			place("Elliot's Beach (Besant Nagar)", "4.4", domain.Coastal,
				"A quieter, cleaner beach popular with locals. Famous for the Karl Schmidt Memorial and dotted with restaurants and street food."),
			place("Government Museum Chennai", "4.3", domain.Cultural,
				"India's second oldest museum (1851) housing extraordinary collections of South Indian bronzes, ammonites, and folk art."),
			place("Mahabalipuram", "4.8", domain.Heritage,
				"UNESCO-listed 7th century shore temples, rock-cut caves and bas-reliefs just 60 km from Chennai - an absolute must-see."),
			place("Dakshinachitra", "4.5", domain.Cultural,
				"A living heritage museum that recreates traditional homes and crafts of South India - complete with artisan demonstrations."),
		}},
		{Key: "manali", Places: []domain.Place{
			place("Rohtang Pass", "4.8", domain.Adventure,
				"A high mountain pass at 3,978m offering breathtaking snow-capped views and access to the Lahaul and Spiti valleys."),
			place("Solang Valley", "4.7", domain.Adventure,
				"Adventure sports hub with skiing, zorbing, paragliding and cable car rides, surrounded by snow-covered peaks year round."),
			place("Hadimba Devi Temple", "4.6", domain.Spiritual,
				"A unique pagoda-style temple in the middle of cedar forests, dedicated to Hadimba, wife of Bhima from the Mahabharata."),
			place("Old Manali", "4.5", domain.Cultural,
				"A charming village with wooden houses, Israeli cafes, boutique shops and the famous Manu Temple, original settlement of Manali."),
			place("Beas River Rafting", "4.7", domain.Adventure,
				"White-water rafting on the Beas river through exciting rapids rated Grade III-IV. An exhilarating 14 km adventure."),
			place("Mall Road Manali", "4.3", domain.Cultural,
				"The main market street lined with shops selling woolens, handicrafts, dried fruits, Himachali shawls, and local street food."),
			place("Vashisht Hot Springs", "4.4", domain.Nature,
				"Natural sulphur hot springs with separate bathing tanks for men and women, located near the ancient Vashisht Temple."),
			place("Naggar Castle", "4.3", domain.Heritage,
				"A 500-year-old castle turned heritage hotel offering panoramic Himalayan views and housing the Nicholas Roerich Art Gallery."),
		}},
		{Key: "kerala", Places: []domain.Place{
			place("Alleppey Backwaters", "4.9", domain.Nature,
				"A magical network of lagoons, lakes and canals. A houseboat stay on the Kerala backwaters is one of India's greatest experiences."),
			place("Munnar Tea Gardens", "4.8", domain.Nature,
				"Rolling hills carpeted in emerald green tea plantations at altitudes of 1600m. The views are absolutely breathtaking."),
			place("Periyar Wildlife Sanctuary", "4.7", domain.Nature,
				"Home to tigers, elephants, bison and leopards - take a boat safari on the Periyar Lake for the best wildlife sightings."),
			place("Kovalam Beach", "4.5", domain.Coastal,
				"Kerala's most popular beach with a crescent-shaped bay, lighthouse, Ayurvedic resorts and world-class seafood restaurants."),
			place("Varkala Beach", "4.7", domain.Coastal,
				"Stunning red cliffs overlooking the Arabian Sea, with a beachside market of yoga studios, cafes and Ayurvedic centers."),
			place("Fort Kochi", "4.6", domain.Heritage,
				"A charming heritage district with Chinese fishing nets, colonial buildings, Jew Town spice market and vibrant street art."),
			place("Wayanad Wildlife Sanctuary", "4.6", domain.Nature,
				"Dense forests in the Western Ghats with rich biodiversity - jeep safaris, treehouse stays and tribal cultural experiences."),
			place("Padmanabhaswamy Temple", "4.8", domain.Spiritual,
				"One of the world's wealthiest temples, dedicated to Lord Vishnu. The vaults reportedly contain trillions in gold treasures."),
		}},
		{Key: "shimla", Places: []domain.Place{
			place("The Ridge", "4.7", domain.Scenic,
				"Shimla's main open space offering panoramic views of the Himalayan ranges, Christ Church, and the famous Scandal Point."),
			place("Mall Road Shimla", "4.5", domain.Cultural,
				"The main promenade lined with colonial-era shops, cafes, and restaurants - the social heart of Shimla free of vehicles."),
			place("Jakhu Temple", "4.6", domain.Spiritual,
				"A 108-foot statue of Lord Hanuman atop Jakhu Hill - a scenic 2.5 km trek from Mall Road with great city views."),
			place("Kufri", "4.5", domain.Adventure,
				"A small hill station 13km from Shimla famous for skiing, tobogganing, horse riding and the Kufri Fun World adventure park."),
			place("Christ Church", "4.4", domain.Heritage,
				"The second oldest church in North India (1857), famous for its neo-Gothic architecture and beautiful stained glass windows."),
			place("Toy Train (Heritage Railway)", "4.8", domain.Adventure,
				"A UNESCO World Heritage toy train journey through 102 tunnels and 864 bridges from Kalka to Shimla - absolutely unforgettable."),
			place("Indian Institute of Advanced Study", "4.3", domain.Heritage,
				"The former British Viceregal Lodge - a stunning Gothic building with beautiful gardens where many key decisions about India were made."),
			place("Chadwick Falls", "4.4", domain.Nature,
				"A 67-metre waterfall a short trek from Shimla, surrounded by thick pine forests - most impressive during and after monsoon."),
		}},
		{Key: "rishikesh", Places: []domain.Place{
			place("Laxman Jhula", "4.6", domain.Scenic,
				"An iconic 450-foot iron suspension bridge over the Ganges with views of temples and ashrams on both sides of the river."),
			place("Triveni Ghat", "4.7", domain.Spiritual,
				"The holiest ghat in Rishikesh where the Ganges Aarti ceremony each evening draws large crowds for its spiritual atmosphere."),
			place("Rafting on the Ganges", "4.8", domain.Adventure,
				"World-class white-water rafting on the Ganges with rapids from Grade I to Grade V. India's best rafting destination."),
			place("Beatles Ashram (Chaurasi Kutia)", "4.5", domain.Cultural,
				"Where The Beatles stayed in 1968 and wrote most of the White Album. Now an iconic open-air art gallery with Beatle murals."),
			place("Neer Garh Waterfall", "4.6", domain.Nature,
				"A stunning cascade a 2 km trek from town - the trail through forest and the emerald pool beneath are breathtaking."),
			place("Yoga & Meditation Centers", "4.9", domain.Spiritual,
				"The yoga capital of the world offers hundreds of ashrams and centers for authentic practices, from one hour to month-long retreats."),
			place("Ram Jhula", "4.5", domain.Scenic,
				"A longer suspension bridge near the Sivananda Ashram with great views of the Ganges and the surrounding Himalayan foothills."),
			place("Bungee Jumping (Jumpin Heights)", "4.7", domain.Adventure,
				"India's highest bungee jumping at 83 metres above the Ganges - located at one of the most scenic spots in Rishikesh."),
		}},
	}
}
