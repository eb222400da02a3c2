package productcopy

// Prompt templates for the copy generation chain. Each step builds on the
// description produced earlier in the chain.

const imageFeaturesPrompt = `Analyze the product image and extract key visual features.
Return a concise, bullet-point list of observable product attributes and characteristics.
Focus on physical appearance, visible features, and distinguishing elements.
Ensure the extracted information is factual and directly observable in the image.`

const descriptionPrompt = `PRODUCT INFORMATION:
Name: ${product_name}
Features: ${product_features}
Category: ${product_category}
Specifications: ${product_specifications}
Visual Features: ${product_features_from_image}

TASK:
Create a comprehensive product description that effectively communicates value to potential customers.

REQUIREMENTS:
- Length: 100-150 words
- Tone: Professional and informative
- Structure: Introduction, key features, benefits, conclusion
- SEO: Incorporate relevant keywords naturally
- Include important technical specifications where relevant
- Highlight unique selling points and competitive advantages

PRODUCT DESCRIPTION:`

const shortDescriptionPrompt = `PRODUCT INFORMATION:
Name: ${product_name}
Full Description: ${product_description}

TASK:
Create a concise product summary for use in listings, search results, and catalog entries.

REQUIREMENTS:
- Length: 15-25 words
- Tone: Compelling and informative
- Must capture the product's core value proposition
- Include primary keywords without keyword stuffing
- Suitable for display in search results and product cards

SHORT DESCRIPTION:`

const seoTitlePrompt = `PRODUCT INFORMATION:
Name: ${product_name}
Description: ${product_description}

TASK:
Create an SEO-optimized title for the product page.

REQUIREMENTS:
- Length: 50-60 characters maximum
- Must include the product name
- Include a primary keyword near the beginning
- Communicate unique selling point if possible
- Avoid keyword stuffing or unnatural phrasing
- Compelling for users but optimized for search engines

SEO TITLE:`

const seoDescriptionPrompt = `PRODUCT INFORMATION:
Name: ${product_name}
Description: ${product_description}

TASK:
Create an SEO-optimized meta description for the product page.

REQUIREMENTS:
- Length: 150-160 characters maximum
- Include the primary keyword and at least one secondary keyword
- Communicate unique value proposition
- Include a clear call-to-action
- Must be compelling for users to click through from search results
- Avoid truncation in search results by staying within character limits

SEO META DESCRIPTION:`

const keywordsPrompt = `PRODUCT INFORMATION:
Name: ${product_name}
Description: ${product_description}

TASK:
Generate a structured list of SEO keywords for the product.

REQUIREMENTS:
- Include 10-15 relevant keywords and phrases
- Include a mix of primary, secondary, and long-tail keywords
- Include a mix of commercial and informational intent keywords
- Consider search volume and competition (prioritize attainable keywords)
- Return the keywords as a flat list`
