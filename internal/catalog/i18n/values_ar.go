package i18n

// 시트에 영어로 입력된 값들의 아랍어 번역표입니다. 번역이 없는 값은 원문 그대로 사용합니다.
var (
	arabicCategories = map[string]string{
		"Pet Supplies - Aquarium Decor & Maintenance": "لوازم الحيوانات الأليفة - ديكور وصيانة الأحواض المائية",
		"Pet Supplies - Habitat Decor": "لوازم الحيوانات الأليفة - ديكور البيئة",
		"Pet Supplies - Cat Toys & Furniture": "لوازم الحيوانات الأليفة - ألعاب وأثاث القطط",
		"Pet Supplies - Reptile Habitats & Decor": "لوازم الحيوانات الأليفة - ديكور وبيئة الزواحف",
		"Pet Supplies - Bird Feeders & Toys": "لوازم الحيوانات الأليفة - مغذيات وألعاب الطيور",
		"Pet Supplies - Small Animal Habitats": "لوازم الحيوانات الأليفة - مساكن الحيوانات الصغيرة",
		"Pet Supplies - Feeding & Bedding": "لوازم الحيوانات الأليفة - التغذية والمفارش",
		"Home Decor & Organization - Indoor Gardening & Planters": "ديكور المنزل والتنظيم - البستنة الداخلية وأوعية الزرع",
		"Home Decor & Organization - Kitchen Accessories": "ديكور المنزل والتنظيم - إكسسوارات المطبخ",
		"Home Decor & Organization - Bathroom Accessories": "ديكور المنزل والتنظيم - إكسسوارات الحمام",
		"Home Decor & Fragrance - Incense Holders & Burners": "ديكور المنزل والعطور - حوامل ومباخر البخور",
		"Office Supplies & Desk Accessories - Perpetual Calendars": "لوازم مكتبية وإكسسوارات المكتب - تقاويم مستمرة",
		"Party Favors / Costume Accessories": "تجهيزات الحفلات / إكسسوارات التنكر",
		"Toys & Games - Novelty & Gag Toys": "الألعاب والترفيه - ألعاب مبتكرة وهدايا طريفة",
		"Electronics Accessories - Cell Phone Stands & Charging Docks": "إكسسوارات الإلكترونيات - حوامل الهواتف ومنصات الشحن",
	}

	arabicCollections = map[string]string{
		"The Aquascape Series": "سلسلة أكواسكيب",
		"Nature Scapes": "مناظر طبيعية",
		"Feline Fun & Comfort": "راحة ومرح القطط",
		"Reptile Realms": "عالم الزواحف",
		"The Modern Sanctuary Series": "سلسلة الملاذ الحديث",
		"Culinary Creations": "إبداعات الطهي",
		"The Party Starter Series": "سلسلة مبهجي الحفلات",
		"The Kinetic Timepiece Collection": "مجموعة الساعات الحركية",
		"The Serenity Flow Collection": "مجموعة تدفق الصفاء",
		"The Whimsical Menagerie Collection": "مجموعة الكائنات الطريفة",
		"The Playful Illusion Collection": "مجموعة الخدع المرحة",
		"The Bio-Kinetic Tech Collection": "مجموعة التقنية الحيوية الحركية",
		"Avian Adventures": "مغامرات الطيور",
		"Small Critter Comforts": "راحة المخلوقات الصغيرة",
		"Pet Care Essentials": "أساسيات العناية بالحيوانات الأليفة",
		"Bug World": "عالم الحشرات",
	}

	arabicTargetMarkets = map[string]string{
		"Aquarium Hobbyists": "هواة أحواض السمك",
		"Aquarium & Reptile Enthusiasts": "محبي أحواض السمك والزواحف",
		"Cat Owners": "أصحاب القطط",
		"Reptile Keepers & Turtle Owners": "مربي الزواحف وأصحاب السلاحف",
		"Urban dwellers, wellness-focused professionals, and biophilic design enthusiasts seeking tranquility in small spaces": "سكان المدن، المحترفون المهتمون بالصحة، ومحبو التصميم الحيوي الباحثون عن الهدوء في المساحات الصغيرة",
		"Home chefs, organizers, and modern kitchen enthusiasts": "طهاة المنازل، المنظمون، ومحبو المطابخ الحديثة",
		"Event Organizers, Photo Booth Operators, and Party Guests": "منظمو الفعاليات، مشغلو كبائن التصوير، وضيوف الحفلات",
		"Office Professionals, Students, Kinetic Art Lovers, and Eco-Conscious Minimalists": "الموظفون، الطلاب، محبو الفن الحركي، والمحبون للبساطة المهتمون بالبيئة",
		"Meditation Practitioners, Tea Lovers, Spa Decorators, and Fans of Unique Aromatherapy": "ممارسو التأمل، محبو الشاي، مصممو المنتجعات الصحية، ومحبو العلاج العطري الفريد",
		"Cat Lovers, Families with Children, Novelty Gift Shoppers, and Bathroom Decor Enthusiasts": "محبو القطط، العائلات التي لديها أطفال، متسوقو الهدايا المبتكرة، ومحبو ديكورات الحمام",
		"Pranksters, Social Media Content Creators, and Party Enthusiasts": "محبي المقالب، صناع محتوى التواصل الاجتماعي، ومحبي الحفلات",
		"Tech Enthusiasts, Modern Workspace Designers, Gamers, and iPhone Users": "عشاق التقنية، مصممو مساحات العمل الحديثة، اللاعبون، ومستخدمو الآيفون",
		"Bird Watchers & Owners": "مراقبو ومربو الطيور",
		"Hamster & Small Pet Owners": "أصحاب الهامستر والحيوانات الأليفة الصغيرة",
		"Pet Owners": "أصحاب الحيوانات الأليفة",
		"Insect Keepers": "مربي الحشرات",
	}

	arabicColors = map[string]string{
		"Black": "أسود",
		"White": "أبيض",
		"Brown": "بني",
		"Blue": "أزرق",
		"Gray": "رمادي",
		"Green": "أخضر",
		"Red": "أحمر",
		"Pink": "وردي",
		"Purple": "أرجواني",
		"Yellow": "أصفر",
		"Orange": "برتقالي",
		"Silver": "فضي",
		"Gold": "ذهبي",
		"Beige": "بيج",
		"Black & White": "أسود وأبيض",
	}

	arabicBenefits = map[string]string{
		"enrichment for your aquatic life while beautifying the tank": "إثراء لحياتك المائية مع تجميل الحوض",
		"a realistic and engaging landscape for your pets": "منظراً طبيعياً واقعياً وجذاباً لحيواناتك الأليفة",
		"hours of entertainment and comfort for your feline friend": "ساعات من الترفيه والراحة لصديقك القط",
		"a naturalistic environment for rest and exploration": "بيئة طبيعية للراحة والاستكشاف",
		"optimal soil moisture without over-saturation": "رطوبة تربة مثالية دون إشباع زائد",
	}

	arabicDescriptions = map[string]string{
		"Fool your friends with this Realistic Cigarette Style Bubble Wand. Modeled to look just like the real thing, this slender stick is actually a fun bubble blower. Perfect for pranks, photoshoots, or just breaking the ice at parties, it lets you blow whimsical bubbles instead of smoke. Please note: This product includes the bubble wand only; the box packaging shown in the display is not included.": "امزح مع أصدقائك باستخدام عصا الفقاعات المصممة بشكل سيجارة واقعية. تم تصميمها لتبدو تماماً مثل الشيء الحقيقي، ولكن هذا العصا الرفيعة هي في الواقع منفاخ فقاعات ممتع. مثالية للمقالب، أو جلسات التصوير، أو لكسر الجمود في الحفلات، فهي تتيح لك نفخ فقاعات خيالية بدلاً من الدخان. يرجى ملاحظة: يتضمن هذا المنتج عصا الفقاعات فقط؛ ولا يشمل صندوق التغليف الموضح في العرض.",
		"Elevate your relaxation ritual with this Levitating Teapot Backflow Incense Fountain. Featuring a glossy black finish and a surreal, gravity-defying design, this burner directs heavy incense smoke down the spout to mimic the act of pouring tea. The smoke pools elegantly in the cup below, creating a mesmerizing, water-like visual effect that calms the mind. Accented with a golden finial, it creates a tranquil atmosphere perfect for meditation corners or spa-inspired living spaces.": "ارتقِ بطقوس الاسترخاء الخاصة بك مع نافورة البخور ذات التدفق العكسي (إبريق الشاي الطائر). بفضل اللمسة النهائية السوداء اللامعة والتصميم السريالي الذي يتحدى الجاذبية، تقوم هذه المبخرة بتوجيه دخان البخور الكثيف إلى الأسفل عبر الفوهة ليحاكي عملية صب الشاي. يتجمع الدخان بأناقة في الكوب بالأسفل، مما يخلق تأثيراً بصرياً ساحراً يشبه الماء يهدئ العقل. مزينة بلمسة نهائية ذهبية، تخلق جواً هادئاً مثالياً لزوايا التأمل أو مساحات المعيشة المستوحاة من المنتجعات الصحية.",
		"Bring the calming rhythm of nature indoors with this gravity-fed watering system. Designed to simulate a gentle rainfall, it hydrates your plants evenly while providing a mesmerizing and serene visual experience. The sleek, modern open-frame architecture allows water to drip slowly from the upper reservoir, ensuring optimal soil moisture without over-saturation. A concealed bottom tray catches excess water, keeping your surfaces pristine. This piece is the perfect fusion of functional botany and modern art.": "أحضر الإيقاع الهادئ للطبيعة إلى الداخل مع نظام الري هذا الذي يعمل بالجاذبية. صُمم ليحاكي سقوط المطر اللطيف، فهو يروي نباتاتك بالتساوي مع توفير تجربة بصرية ساحرة وهادئة. تتيح البنية الحديثة ذات الإطار المفتوح للماء بالتقطير ببطء من الخزان العلوي، مما يضمن رطوبة تربة مثالية دون إشباع زائد. تلتقط الصينية السفلية المخفية المياه الزائدة، مما يحافظ على نظافة الأسطح. هذه القطعة هي الدمج المثالي بين علم النبات العملي والفن الحديث.",
		"Keep track of time with a playful twist using this Infinite Spin Manual Desktop Calendar. Featuring a vibrant yellow finish and a clever 3D-printed design, this perpetual calendar replaces disposable paper planners with an interactive, everlasting solution. Three independent rotating rings allow you to manually align the day, date, and month, turning your morning routine into a satisfying tactile ritual. Its compact, modern form makes it a functional conversation piece for any creative workspace or study desk.": "تتبع الوقت بلمسة مرحة مع هذا التقويم المكتبي اليدوي دائم الدوران. يتميز هذا التقويم الدائم بلمسة نهائية صفراء نابضة بالحياة وتصميم ذكي مطبوع ثلاثي الأبعاد، ويحل محل المخططات الورقية التي تستخدم لمرة واحدة بحل تفاعلي وأبدي. تتيح لك ثلاث حلقات دوارة مستقلة محاذاة اليوم والتاريخ والشهر يدوياً، مما يحول روتينك الصباحي إلى طقس ملموس وممتع. شكله الحديث والمدمج يجعله قطعة مميزة وعملية لأي مساحة عمل إبداعية أو مكتب دراسة.",
		"Transform your desk setup with this Articulated Vertebrae MagSafe Docking Stand. Featuring a bold, S-curved design reminiscent of a spinal column, this stand combines industrial aesthetics with functional stability. The segmented arm, accented with contrasting joints, creates a dynamic floating effect for your phone while securely housing your magnetic charger. With built-in cable management channels to keep wires hidden, this piece serves as both a high-tech charging station and a modern sculptural display.": "حول إعداد مكتبك مع قاعدة شحن MagSafe ذات الفقرات المفصّلة. تتميز هذه القاعدة بتصميم جريء على شكل حرف S يشبه العمود الفقري، وهي تجمع بين الجمال الصناعي والاستقرار الوظيفي. تخلق الذراع المجزأة، المزينة بمفاصل متباينة، تأثيراً عائماً ديناميكياً لهاتفك بينما تضم شاحنك المغناطيسي بأمان. مع قنوات إدارة الكابلات المدمجة لإبقاء الأسلاك مخفية، تعمل هذه القطعة كمحطة شحن متطورة وعرض نحتي حديث في آن واحد.",
	}
)

const (
	arabicTemplateUpgrade = "قم بترقية {area} الخاص بك باستخدام {product}."
	arabicTemplateExpertly = "تم تصميمه باحتراف لـ {target}، ويوفر هذا الملحق عالي الجودة {benefit}."
	arabicTemplateDurable = "يضمن هيكله المتين الاستدامة، مما يجعله مناسباً تماماً لأي {context}."
	arabicTemplateEasy = "سهل الاستخدام والتنظيف، ويجمع بين الوظيفة والجمال الأنيق."
	arabicTemplateDimensions = "الأبعاد: {dims} مم."
)
