package service

import "fmt"

// BuildRecommendations 按固定顺序评估规则，输出顺序即评估顺序，结果非空
// 前三条规则互不抑制；兜底消息仅在前三条都未命中时追加；时段消息独立追加
func BuildRecommendations(m AggregateResult, buckets []BestTimeBucket) []string {
	recommendations := make([]string, 0, 4)

	if m.EngagementRate < 0.04 {
		recommendations = append(recommendations,
			"Engagement is low. Lead with a stronger hook in the first 2 seconds and add a clear CTA.")
	}
	if m.Views7d < m.AvgViews*3 {
		recommendations = append(recommendations,
			"Your last 7 days are lighter than your average. Post 2 short clips that remix your top-performing format.")
	}
	if m.TopPost != nil && m.TopPost.Title != "" {
		recommendations = append(recommendations,
			fmt.Sprintf("Your top post (“%s”) is your template—repeat that structure with a new angle/topic.", m.TopPost.Title))
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Performance looks strong. Keep cadence steady and test one new hook format this week.")
	}

	if len(buckets) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Best posting window from your data: around %02d:00 (highest engagement rate).", buckets[0].Hour))
	}

	return recommendations
}
