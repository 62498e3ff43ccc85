package assistant

import "wellora-backend/internal/nlp"

// responseTemplates holds the fixed response pool per intent. One template
// is picked uniformly at random per query; intents absent from the table
// fall back to the general_health pool.
var responseTemplates = map[nlp.Intent][]string{
	nlp.IntentDietaryAdvice: {
		"A balanced diet is key. Try focusing on lean proteins like lentils or chicken, and complex carbohydrates like quinoa or sweet potatoes.",
		"For optimal health, try to fill half your plate with colorful vegetables at every meal. It ensures a wide range of micronutrients.",
		"Hydration is often confused with hunger. Make sure you're drinking enough water alongside your meals to support digestion.",
		"If you're looking to improve your diet, cutting back on processed sugars and focusing on whole fruits is a great first step.",
		"Incorporate healthy fats like avocado, nuts, and olive oil for better brain health and hormone regulation.",
	},
	nlp.IntentFitnessAdvice: {
		"Consistency is more important than intensity. Find an activity you enjoy—be it swimming, dancing, or lifting—and stick with it.",
		"Regular exercise, especially a mix of cardio and resistance training, can significantly boost your metabolic rate.",
		"Don't forget to warm up! Dynamic stretching is essential for preventing injuries and preparing your body for a workout.",
		"Ideally, aim for 150 minutes of moderate activity per week. Even three 10-minute walks a day can make a massive difference.",
		"Try 'Zone 2' training (moderate intensity where you can still talk) to build a strong cardiovascular foundation.",
	},
	nlp.IntentSleepAdvice: {
		"Quality sleep starts with a consistent routine. Try to go to bed and wake up at the same time every day, even on weekends.",
		"Avoid screens at least an hour before bed, as blue light can interfere with melatonin production.",
		"Make sure your sleeping environment is cool (around 18°C), dark, and quiet for the deepest restorative rest.",
		"If you're feeling tired during the day, a short 20-minute power nap before 3 PM can help recharge you without affecting night sleep.",
		"Magnesium-rich foods or a warm bath before bed can help relax your muscles and prepare your body for sleep.",
	},
	nlp.IntentMentalHealth: {
		"Taking time for yourself is not selfish, it's necessary. Try a 5-minute boxed breathing exercise (4-4-4-4) to calm your nervous system.",
		"Mindfulness can help reduce stress. Even just focusing on your senses for a few minutes can lower cortisol levels.",
		"If you're feeling overwhelmed, try 'brain dumping'—writing down every single thing on your mind for 5 minutes.",
		"Don't underestimate the power of 'green time'—a short walk in nature has been shown to reduce rumination and anxiety.",
		"Connect with a friend or loved one. Social connection is one of the strongest predictors of mental well-being.",
	},
	nlp.IntentHydrationAdvice: {
		"Aim for about 2-3 liters of water a day, but listen to your body's thirst signals and adjust for activity level.",
		"Eating fruits and vegetables with high water content, like cucumber, celery, or watermelon, is a delicious way to stay hydrated.",
		"If you find plain water boring, try infusing it with lemon, ginger, or mint for added antioxidants.",
		"Being well-hydrated improves skin elasticity, cognitive function, and helps your kidneys flush out toxins.",
	},
	nlp.IntentWeightAdvice: {
		"Focus on non-scale victories like increased energy, better-fitting clothes, and improved strength rather than just the number on the scale.",
		"Sustainable weight management comes from small, consistent changes. Focus on adding protein and fiber to every meal.",
		"Muscle is denser than fat. If you're lifting weights, your weight might stay the same while your body composition improves.",
		"A healthy and sustainable rate of weight loss is typically 0.5 to 1% of your body weight per week.",
	},
	nlp.IntentSpiritualHealth: {
		"Connecting with your inner self through daily gratitude can shift your perspective from lack to abundance.",
		"Spiritual wellness is about finding meaning. Take 10 minutes today to reflect on what truly matters to you.",
		"Yoga is a beautiful bridge between the physical and spiritual. Even 15 minutes of Sun Salutations can ground your energy.",
		"Deep, conscious breathing helps align your mind and body. Try inhaling peace and exhaling tension.",
		"Spend time in silence. In the quiet, you can often find the answers you've been looking for.",
	},
	nlp.IntentGeneralHealth: {
		"I'm here to support your holistic journey. Feel free to ask about nutrition, fitness, sleep, or spiritual wellness!",
		"Small daily habits lead to big long-term results. What's one small, healthy choice you can make in the next hour?",
		"Health is a holistic journey involving mind, body, and spirit. Treat yourself with kindness today.",
		"Listening to your body's signals is the most important skill you can develop for long-term health and fitness.",
	},
	nlp.IntentPainPoints: {
		"If you're dealing with physical pain, remember to rest and consult a professional if it persists. Gentle yoga or stretching might help with minor back or neck tension.",
		"Low energy often stems from a combination of dehydration, poor sleep, or lack of movement. Try a 10-minute walk and a glass of water.",
		"Feeling stressed or anxious? Box breathing and 'grounding' (noticing 5 things you can see, 4 you can touch...) are powerful tools for instant relief.",
		"For headaches, ensure you're not straining your eyes at a screen. A dark room and hydration are often the first steps to recovery.",
		"If you're feeling bloated, try ginger tea or a light walk after your meal to aid digestion.",
	},
}

// TemplatePool returns the intent's template pool, falling back to the
// general_health pool for intents without one.
func TemplatePool(intent nlp.Intent) []string {
	if pool, ok := responseTemplates[intent]; ok {
		return pool
	}
	return responseTemplates[nlp.IntentGeneralHealth]
}
